//go:build !windows && !plan9

package backend

import (
	"log/syslog"
)

// dialSyslog connects over a datagram socket first and falls back to a
// stream socket, like most syslog clients do for local daemons.
func dialSyslog(addr, tag string) (SyslogConn, error) {
	w, err := syslog.Dial("unixgram", addr, syslog.LOG_USER|syslog.LOG_INFO, tag)
	if err == nil {
		return w, nil
	}
	w, err = syslog.Dial("unix", addr, syslog.LOG_USER|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, err
	}
	return w, nil
}
