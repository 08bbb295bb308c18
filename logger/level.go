package logger

import (
	"github.com/mordilloSan/go-phklogger/backend"
)

// Level is a message severity. Any integer is a valid threshold; only the
// five named levels can be written.
type Level = backend.Level

const (
	// DebugLevel enables debug logging.
	DebugLevel = backend.DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel = backend.InfoLevel
	// WarningLevel is the default threshold.
	WarningLevel = backend.WarningLevel
	// ErrorLevel enables error logging.
	ErrorLevel = backend.ErrorLevel
	// CriticalLevel enables critical logging.
	CriticalLevel = backend.CriticalLevel
)

// LevelSpec is either a Level (integer severity) or a LevelName.
// A nil LevelSpec means "not given".
type LevelSpec = backend.LevelSpec

// LevelName is a level given by name, matched case-insensitively.
// "INFOS" is accepted for INFO.
type LevelName = backend.LevelName

// ParseLevel maps a level name to its Level, ignoring case.
func ParseLevel(name string) (Level, bool) {
	return backend.ParseLevel(name)
}

// resolveConfigLevel never fails: a missing or unrecognized threshold
// becomes WarningLevel.
func resolveConfigLevel(spec LevelSpec) Level {
	return backend.ResolveThreshold(spec)
}

// resolveCallLevel resolves the level of a single write. A missing level
// selects the threshold; an unrecognized name is an InvalidLevelError.
func (l *Logger) resolveCallLevel(spec LevelSpec) (Level, error) {
	if spec == nil {
		return l.threshold, nil
	}
	lvl, ok := backend.Resolve(spec)
	if !ok {
		name, _ := spec.(LevelName)
		return 0, &InvalidLevelError{Value: string(name)}
	}
	return lvl, nil
}
