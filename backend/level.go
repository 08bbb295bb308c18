package backend

import (
	"fmt"
	"strings"
)

// Level is a message severity. Higher values are more severe.
type Level int

const (
	// DebugLevel is for diagnostic detail.
	DebugLevel Level = 10
	// InfoLevel is for normal operational messages.
	InfoLevel Level = 20
	// WarningLevel is the default threshold.
	WarningLevel Level = 30
	// ErrorLevel is for failed operations.
	ErrorLevel Level = 40
	// CriticalLevel is for failures the process may not survive.
	CriticalLevel Level = 50
)

// String returns the canonical level name, or "Level <n>" for severities
// outside the canonical set.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Level %d", int(l))
	}
}

// IsCanonical reports whether l is one of the five named levels.
func (l Level) IsCanonical() bool {
	switch l {
	case DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel:
		return true
	}
	return false
}

// ParseLevel maps a level name to its Level, ignoring case.
// "INFOS" is accepted as an alias of "INFO".
func ParseLevel(name string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO", "INFOS":
		return InfoLevel, true
	case "WARNING":
		return WarningLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL":
		return CriticalLevel, true
	}
	return 0, false
}

// LevelSpec is a level given either as an integer severity (Level) or by name
// (LevelName). A nil LevelSpec means the level was not given.
type LevelSpec interface {
	resolve() (Level, bool)
}

func (l Level) resolve() (Level, bool) {
	return l, true
}

// LevelName is a level given by name, matched case-insensitively.
type LevelName string

func (n LevelName) resolve() (Level, bool) {
	return ParseLevel(string(n))
}

// Resolve returns the Level named by spec. It fails for a nil spec and for
// names ParseLevel does not know.
func Resolve(spec LevelSpec) (Level, bool) {
	if spec == nil {
		return 0, false
	}
	return spec.resolve()
}

// ResolveThreshold never fails: a missing or unrecognized threshold becomes
// WarningLevel.
func ResolveThreshold(spec LevelSpec) Level {
	if l, ok := Resolve(spec); ok {
		return l
	}
	return WarningLevel
}
