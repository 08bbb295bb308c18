package logger

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mordilloSan/go-phklogger/backend"
)

// ErrInvalidLevel is matched by every InvalidLevelError.
var ErrInvalidLevel = errors.New("invalid log level")

// InvalidLevelError reports a level that cannot be written: an unknown name
// passed to Log, or a severity with no console style.
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q", e.Value)
}

// Is lets errors.Is match ErrInvalidLevel.
func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}

// Construction errors come from the backend and are re-exported here so
// callers only import this package.
type (
	// UnsupportedPlatformError is returned by New when no Target is set and
	// the platform has no known system log socket.
	UnsupportedPlatformError = backend.UnsupportedPlatformError
	// IOError is returned by New when the Target file or its directories
	// cannot be created.
	IOError = backend.IOError
	// HandlerSetupError is returned by New when the sink cannot be set up.
	HandlerSetupError = backend.HandlerSetupError
)

// ErrUnsupportedPlatform is matched by every UnsupportedPlatformError.
var ErrUnsupportedPlatform = backend.ErrUnsupportedPlatform
