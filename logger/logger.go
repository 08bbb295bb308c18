package logger

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mattn/go-colorable"

	"github.com/mordilloSan/go-phklogger/backend"
)

// Config defines options for New. The zero value logs WARNING and above to
// the system log under DefaultName, without console echo.
type Config struct {
	// Target writes logs to this file, creating it and its directories.
	// Default: "" (system log)
	Target string
	// Threshold is the minimum level written, as a Level or a LevelName.
	// Unrecognized names fall back to WarningLevel.
	// Default: nil (WarningLevel)
	Threshold LevelSpec
	// Name identifies the backend sink; loggers sharing a name share sinks.
	// Default: DefaultName
	Name string
	// Console echoes every written message to stdout with ANSI colors.
	// Default: false
	Console bool
	// BackupCount is the number of rotated files kept; negative keeps all.
	// Default: 3
	BackupCount int
	// RotateWhen is the file rotation boundary: S, M, H, D, midnight or W0-W6.
	// Default: "midnight"
	RotateWhen string
	// RotateInterval multiplies RotateWhen.
	// Default: 1
	RotateInterval int
	// MaxSizeMB rotates the file early once it reaches this size.
	// Default: 100
	MaxSizeMB int
	// Pattern is the backend record layout.
	// Default: DefaultPattern
	Pattern string
	// Registry holds the named sinks.
	// Default: backend.DefaultRegistry()
	Registry *backend.Registry
}

// DefaultName is the sink name used when Config.Name is empty.
const DefaultName = backend.DefaultName

// DefaultPattern is the record layout used when Config.Pattern is empty.
const DefaultPattern = backend.DefaultPattern

// Dependency injection point for testing console output.
var outStdout io.Writer = colorable.NewColorableStdout()

// Logger filters messages against a threshold, emits them to its backend and
// optionally echoes them to the console. Its configuration is fixed by New.
type Logger struct {
	name      string
	threshold Level
	console   bool
	backend   *backend.Backend
}

// New builds a Logger from config. It fails, returning no Logger, when the
// backend sink cannot be set up.
func New(config Config) (*Logger, error) {
	registry := config.Registry
	if registry == nil {
		registry = backend.DefaultRegistry()
	}
	threshold := resolveConfigLevel(config.Threshold)

	b, err := registry.Open(backend.Config{
		Target:         config.Target,
		Threshold:      threshold,
		Name:           config.Name,
		BackupCount:    config.BackupCount,
		RotateWhen:     config.RotateWhen,
		RotateInterval: config.RotateInterval,
		MaxSizeMB:      config.MaxSizeMB,
		Pattern:        config.Pattern,
	})
	if err != nil {
		return nil, err
	}

	return &Logger{
		name:      b.Name(),
		threshold: threshold,
		console:   config.Console,
		backend:   b,
	}, nil
}

// Name returns the backend sink name.
func (l *Logger) Name() string {
	return l.name
}

// Threshold returns the minimum level written.
func (l *Logger) Threshold() Level {
	return l.threshold
}

// Close releases the logger's backend sink. Further writes return
// backend.ErrClosed.
func (l *Logger) Close() error {
	return l.backend.Close()
}

// Log writes message at level. A nil level selects the threshold.
//
// The message is stringified and stripped of trailing whitespace; an empty
// result is dropped. Messages below the threshold are dropped before reaching
// the backend or the console. Options override the level's console color
// and intensity.
func (l *Logger) Log(message any, level LevelSpec, opts ...Option) error {
	msg := strings.TrimRightFunc(stringify(message), unicode.IsSpace)
	if msg == "" {
		return nil
	}

	lvl, err := l.resolveCallLevel(level)
	if err != nil {
		return err
	}
	if lvl < l.threshold {
		return nil
	}

	s, ok := levelStyles[lvl]
	if !ok {
		return &InvalidLevelError{Value: lvl.String()}
	}
	if err := l.backend.Emit(lvl, msg); err != nil {
		return err
	}

	for _, opt := range opts {
		opt(&s)
	}
	if !l.console {
		return nil
	}
	return echo(outStdout, s, msg)
}

func stringify(message any) string {
	switch m := message.(type) {
	case string:
		return m
	case []byte:
		return string(m)
	default:
		return fmt.Sprint(message)
	}
}

// Debug writes message at DebugLevel.
func (l *Logger) Debug(message any, opts ...Option) error {
	return l.Log(message, DebugLevel, opts...)
}

// Info writes message at InfoLevel.
func (l *Logger) Info(message any, opts ...Option) error {
	return l.Log(message, InfoLevel, opts...)
}

// Warning writes message at WarningLevel.
func (l *Logger) Warning(message any, opts ...Option) error {
	return l.Log(message, WarningLevel, opts...)
}

// Error writes message at ErrorLevel.
func (l *Logger) Error(message any, opts ...Option) error {
	return l.Log(message, ErrorLevel, opts...)
}

// Critical writes message at CriticalLevel.
func (l *Logger) Critical(message any, opts ...Option) error {
	return l.Log(message, CriticalLevel, opts...)
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Debugf writes a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) error {
	return l.Log(fmt.Sprintf(format, v...), DebugLevel)
}

// Infof writes an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) error {
	return l.Log(fmt.Sprintf(format, v...), InfoLevel)
}

// Warningf writes a warning message formatted with fmt.Sprintf.
func (l *Logger) Warningf(format string, v ...any) error {
	return l.Log(fmt.Sprintf(format, v...), WarningLevel)
}

// Errorf writes an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) error {
	return l.Log(fmt.Sprintf(format, v...), ErrorLevel)
}

// Criticalf writes a critical message formatted with fmt.Sprintf.
func (l *Logger) Criticalf(format string, v ...any) error {
	return l.Log(fmt.Sprintf(format, v...), CriticalLevel)
}
