package backend

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnsupportedPlatform is matched by every UnsupportedPlatformError.
var ErrUnsupportedPlatform = errors.New("no system log destination for this platform")

// ErrClosed is returned by Emit on a closed Backend.
var ErrClosed = errors.New("log backend closed")

// UnsupportedPlatformError is returned when no target file is configured and
// the operating system has no known system log socket.
type UnsupportedPlatformError struct {
	GOOS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("no system log destination for platform %q", e.GOOS)
}

// Is lets errors.Is match ErrUnsupportedPlatform.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// IOError reports a filesystem failure while preparing a log file target.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// HandlerSetupError reports a sink that could not be established: an invalid
// rotation policy, an unreachable syslog socket or a malformed pattern.
type HandlerSetupError struct {
	Target string
	Err    error
}

func (e *HandlerSetupError) Error() string {
	return fmt.Sprintf("unable to set up log handler for %s: %v", e.Target, e.Err)
}

// Unwrap returns the cause.
func (e *HandlerSetupError) Unwrap() error {
	return e.Err
}
