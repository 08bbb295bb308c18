package backend

import (
	"github.com/pkg/errors"
)

// SyslogConn is the subset of *log/syslog.Writer used by the syslog handler.
type SyslogConn interface {
	Debug(m string) error
	Info(m string) error
	Warning(m string) error
	Err(m string) error
	Crit(m string) error
	Close() error
}

// SyslogDialer connects to the system log at addr, tagging messages with tag.
type SyslogDialer func(addr, tag string) (SyslogConn, error)

// DefaultSyslogAddrs maps GOOS values to the local system log socket.
var DefaultSyslogAddrs = map[string]string{
	"linux":   "/dev/log",
	"darwin":  "/var/run/syslog",
	"freebsd": "/var/run/log",
	"netbsd":  "/var/run/log",
	"openbsd": "/dev/log",
}

type syslogHandler struct {
	addr      string
	conn      SyslogConn
	formatter *Formatter
}

func (h *syslogHandler) emit(r Record) error {
	line := h.formatter.Format(r)
	var err error
	switch {
	case r.Level >= CriticalLevel:
		err = h.conn.Crit(line)
	case r.Level >= ErrorLevel:
		err = h.conn.Err(line)
	case r.Level >= WarningLevel:
		err = h.conn.Warning(line)
	case r.Level >= InfoLevel:
		err = h.conn.Info(line)
	default:
		err = h.conn.Debug(line)
	}
	return errors.Wrapf(err, "syslog %s", h.addr)
}

func (h *syslogHandler) close() error {
	return h.conn.Close()
}
