package backend

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ensureFile creates the parent directories of path and an empty file at
// path when they are missing. Existing content is left untouched.
func ensureFile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "create directory", Path: dir, Err: err}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &IOError{Op: "create file", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close file", Path: path, Err: err}
	}
	return nil
}

// fileHandler appends formatted records to a file and rotates it at the
// configured time boundary or when it outgrows MaxSizeMB.
type fileHandler struct {
	path      string
	formatter *Formatter
	now       func() time.Time
	log       hclog.Logger

	mu         sync.Mutex
	out        *lumberjack.Logger
	schedule   rollover
	rolloverAt time.Time
	rotatedAt  time.Time
}

func openFile(cfg Config, formatter *Formatter, now func() time.Time, log hclog.Logger) (*fileHandler, error) {
	if err := ensureFile(cfg.Target); err != nil {
		return nil, err
	}
	schedule, err := parseRollover(cfg.RotateWhen, cfg.RotateInterval)
	if err != nil {
		return nil, &HandlerSetupError{Target: cfg.Target, Err: err}
	}
	info, err := os.Stat(cfg.Target)
	if err != nil {
		return nil, &HandlerSetupError{Target: cfg.Target, Err: err}
	}

	backups := cfg.BackupCount
	if backups < 0 {
		backups = 0
	}
	h := &fileHandler{
		path:      cfg.Target,
		formatter: formatter,
		now:       now,
		log:       log,
		out: &lumberjack.Logger{
			Filename:   cfg.Target,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: backups,
			LocalTime:  true,
		},
		schedule:   schedule,
		rolloverAt: schedule.next(info.ModTime()),
	}
	log.Debug("file handler ready", "path", h.path, "rollover_at", h.rolloverAt)
	return h, nil
}

func (h *fileHandler) emit(r Record) error {
	line := h.formatter.Format(r) + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()

	if now := h.now(); !now.Before(h.rolloverAt) {
		// lumberjack names backups after the wall clock in milliseconds, so
		// two rotations in the same millisecond would share a backup name.
		if wait := time.Millisecond - time.Since(h.rotatedAt); wait > 0 {
			time.Sleep(wait)
		}
		if err := h.out.Rotate(); err != nil {
			return errors.Wrapf(err, "rotate %s", h.path)
		}
		h.rotatedAt = time.Now()
		h.rolloverAt = h.schedule.next(now)
		h.log.Debug("rotated log file", "path", h.path, "next", h.rolloverAt)
	}
	if _, err := io.WriteString(h.out, line); err != nil {
		return errors.Wrapf(err, "write %s", h.path)
	}
	return nil
}

func (h *fileHandler) close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.out.Close()
}
