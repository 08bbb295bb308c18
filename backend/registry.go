package backend

import (
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// DefaultName is the handler name used when Config.Name is empty.
const DefaultName = "phklogger"

// Default values applied by Config.withDefaults.
const (
	DefaultBackupCount    = 3
	DefaultRotateInterval = 1
	DefaultMaxSizeMB      = 100
)

// Config describes one sink attachment.
type Config struct {
	// Target is the log file path. Empty selects the system log.
	Target string
	// Threshold is resolved with ResolveThreshold and recorded; the backend
	// never filters.
	Threshold LevelSpec
	// Name keys the registry. A later Open with the same Name and Target
	// reuses the attached sink as it was first configured; its own
	// BackupCount, RotateWhen, RotateInterval, MaxSizeMB and Pattern are
	// ignored. Default: DefaultName.
	Name string
	// BackupCount is the number of rotated files kept. Zero selects
	// DefaultBackupCount; a negative value keeps every rotated file.
	BackupCount int
	// RotateWhen is the rotation boundary: S, M, H, D, midnight or W0-W6.
	// Default: "midnight"
	RotateWhen string
	// RotateInterval multiplies RotateWhen. Default: 1
	RotateInterval int
	// MaxSizeMB rotates a file early once it reaches this size. Default: 100
	MaxSizeMB int
	// Pattern is the record layout. Default: DefaultPattern
	Pattern string
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.BackupCount == 0 {
		c.BackupCount = DefaultBackupCount
	}
	if c.RotateWhen == "" {
		c.RotateWhen = DefaultRotateWhen
	}
	if c.RotateInterval == 0 {
		c.RotateInterval = DefaultRotateInterval
	}
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	return c
}

type handler interface {
	emit(r Record) error
	close() error
}

type attachment struct {
	key  string
	cfg  Config
	h    handler
	refs int
}

// channel is every handler attached under one name.
type channel struct {
	attached []*attachment
}

func (c *channel) find(key string) *attachment {
	for _, a := range c.attached {
		if a.key == key {
			return a
		}
	}
	return nil
}

// Registry is a name-keyed table of sinks. Backends opened under the same name
// share every sink attached to that name.
type Registry struct {
	goos        string
	syslogAddrs map[string]string
	dial        SyslogDialer
	log         hclog.Logger
	metrics     *metrics.Metrics
	now         func() time.Time

	mu       sync.Mutex
	channels map[string]*channel
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithPlatform overrides the GOOS used to pick the system log address.
func WithPlatform(goos string) RegistryOption {
	return func(r *Registry) { r.goos = goos }
}

// WithSyslogAddrs replaces the GOOS to system log address table.
func WithSyslogAddrs(addrs map[string]string) RegistryOption {
	return func(r *Registry) { r.syslogAddrs = addrs }
}

// WithSyslogDialer replaces the function used to connect to the system log.
func WithSyslogDialer(dial SyslogDialer) RegistryOption {
	return func(r *Registry) { r.dial = dial }
}

// WithLogger sets the logger receiving the registry's own diagnostics.
// A nil logger discards them.
func WithLogger(l hclog.Logger) RegistryOption {
	return func(r *Registry) {
		if l == nil {
			r.log = hclog.NewNullLogger()
			return
		}
		r.log = l.Named("backend")
	}
}

// WithMetrics sets the metrics instance counting emitted records.
func WithMetrics(m *metrics.Metrics) RegistryOption {
	return func(r *Registry) { r.metrics = m }
}

// WithClock sets the time source for record timestamps and rotation.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		goos:        runtime.GOOS,
		syslogAddrs: DefaultSyslogAddrs,
		dial:        dialSyslog,
		log:         hclog.NewNullLogger(),
		now:         time.Now,
		channels:    make(map[string]*channel),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = metrics.Default()
	}
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open attaches a sink for cfg under cfg.Name and returns a Backend emitting
// to every sink attached to that name. A sink already attached under the same
// name for the same destination is reused.
func (r *Registry) Open(cfg Config) (*Backend, error) {
	cfg = cfg.withDefaults()

	key, create, err := r.destination(cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.channels[cfg.Name]
	if !ok {
		ch = &channel{}
	}
	sink := cfg
	sink.Target, sink.Threshold = "", nil
	if a := ch.find(key); a != nil {
		a.refs++
		r.log.Debug("reusing handler", "name", cfg.Name, "destination", key, "refs", a.refs)
		if a.cfg != sink {
			r.log.Debug("sink settings differ from the attached handler, keeping the attached ones",
				"name", cfg.Name, "destination", key)
		}
	} else {
		h, err := create()
		if err != nil {
			return nil, err
		}
		ch.attached = append(ch.attached, &attachment{key: key, cfg: sink, h: h, refs: 1})
		r.log.Debug("attached handler", "name", cfg.Name, "destination", key)
	}
	r.channels[cfg.Name] = ch

	return &Backend{registry: r, name: cfg.Name, key: key, threshold: ResolveThreshold(cfg.Threshold)}, nil
}

// destination resolves the registry key of cfg's sink and a constructor for it.
func (r *Registry) destination(cfg Config) (string, func() (handler, error), error) {
	formatter, err := NewFormatter(cfg.Pattern)
	if err != nil {
		target := cfg.Target
		if target == "" {
			target = "syslog"
		}
		return "", nil, &HandlerSetupError{Target: target, Err: err}
	}

	if cfg.Target == "" {
		addr, ok := r.syslogAddrs[r.goos]
		if !ok {
			return "", nil, errors.WithStack(&UnsupportedPlatformError{GOOS: r.goos})
		}
		return "syslog:" + addr, func() (handler, error) {
			conn, err := r.dial(addr, cfg.Name)
			if err != nil {
				return nil, &HandlerSetupError{Target: addr, Err: err}
			}
			return &syslogHandler{addr: addr, conn: conn, formatter: formatter}, nil
		}, nil
	}

	path, err := filepath.Abs(cfg.Target)
	if err != nil {
		return "", nil, &IOError{Op: "resolve path", Path: cfg.Target, Err: err}
	}
	cfg.Target = path
	// Every Open of a file target leaves the file in place, reused sink or not.
	if err := ensureFile(path); err != nil {
		return "", nil, err
	}
	return "file:" + path, func() (handler, error) {
		return openFile(cfg, formatter, r.now, r.log)
	}, nil
}

func (r *Registry) handlers(name string) []handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[name]
	if !ok {
		return nil
	}
	hs := make([]handler, 0, len(ch.attached))
	for _, a := range ch.attached {
		hs = append(hs, a.h)
	}
	return hs
}

func (r *Registry) release(name, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[name]
	if !ok {
		return nil
	}
	a := ch.find(key)
	if a == nil {
		return nil
	}
	a.refs--
	if a.refs > 0 {
		return nil
	}
	kept := ch.attached[:0]
	for _, other := range ch.attached {
		if other != a {
			kept = append(kept, other)
		}
	}
	ch.attached = kept
	if len(ch.attached) == 0 {
		delete(r.channels, name)
	}
	r.log.Debug("detached handler", "name", name, "destination", key)
	return a.h.close()
}

// Backend emits records under one registry name.
type Backend struct {
	registry  *Registry
	name      string
	key       string
	threshold Level

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Name returns the registry name the backend emits under.
func (b *Backend) Name() string {
	return b.name
}

// Threshold returns the level the backend was opened with.
func (b *Backend) Threshold() Level {
	return b.threshold
}

// Emit forwards message at level to every sink attached under the backend's
// name. It does not filter; write errors are returned to the caller.
func (b *Backend) Emit(level Level, message string) error {
	if b.closed.Load() {
		return errors.WithStack(ErrClosed)
	}
	r := b.registry
	rec := Record{Name: b.name, Level: level, Message: message, Time: r.now()}
	labels := []metrics.Label{{Name: "name", Value: b.name}, {Name: "level", Value: level.String()}}

	var first error
	for _, h := range r.handlers(b.name) {
		if err := h.emit(rec); err != nil && first == nil {
			first = errors.Wrapf(err, "emit to %s", b.name)
		}
	}
	if first != nil {
		r.metrics.IncrCounterWithLabels([]string{"backend", "emit_error"}, 1, labels)
		return first
	}
	r.metrics.IncrCounterWithLabels([]string{"backend", "emit"}, 1, labels)
	return nil
}

// Close releases the backend's sink. The sink is closed once no backend
// references it. Close is idempotent.
func (b *Backend) Close() error {
	b.closeOnce.Do(func() {
		b.closed.Store(true)
		b.closeErr = b.registry.release(b.name, b.key)
	})
	return b.closeErr
}
