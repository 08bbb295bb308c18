//go:build windows || plan9

package backend

import (
	"github.com/pkg/errors"
)

func dialSyslog(addr, tag string) (SyslogConn, error) {
	return nil, errors.New("syslog is not available on this platform")
}
