package backend

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultPattern renders "<name> <asctime> <LEVEL padded to 8> <message>".
const DefaultPattern = "%(name)s %(asctime)s %(levelname)-8s %(message)s"

// asctimeLayout renders timestamps with comma-separated milliseconds.
const asctimeLayout = "2006-01-02 15:04:05,000"

var directive = regexp.MustCompile(`%\(([A-Za-z_]+)\)([-+# 0]*[0-9]*(?:\.[0-9]+)?)([sdfr])|%%`)

// Record is one message as seen by a handler.
type Record struct {
	Name    string
	Level   Level
	Message string
	Time    time.Time
}

type fieldKind int

const (
	textField fieldKind = iota
	numberField
)

var fields = map[string]fieldKind{
	"name":      textField,
	"asctime":   textField,
	"levelname": textField,
	"message":   textField,
	"levelno":   numberField,
	"process":   numberField,
	"created":   numberField,
}

type segment struct {
	literal string
	field   string
	verb    string
}

// Formatter renders records through a pattern with %(field)s directives.
type Formatter struct {
	pattern  string
	segments []segment
}

// NewFormatter compiles pattern. An empty pattern selects DefaultPattern.
func NewFormatter(pattern string) (*Formatter, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	f := &Formatter{pattern: pattern}
	last := 0
	for _, m := range directive.FindAllStringSubmatchIndex(pattern, -1) {
		if err := f.literal(pattern[last:m[0]]); err != nil {
			return nil, err
		}
		last = m[1]
		if pattern[m[0]:m[1]] == "%%" {
			f.segments = append(f.segments, segment{literal: "%"})
			continue
		}
		name, flags, verb := pattern[m[2]:m[3]], pattern[m[4]:m[5]], pattern[m[6]:m[7]]
		kind, ok := fields[name]
		if !ok {
			return nil, errors.Errorf("unknown pattern field %q", name)
		}
		if kind == textField && (verb == "d" || verb == "f") {
			return nil, errors.Errorf("pattern field %q is not numeric", name)
		}
		f.segments = append(f.segments, segment{field: name, verb: "%" + flags + verb})
	}
	if err := f.literal(pattern[last:]); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Formatter) literal(s string) error {
	if s == "" {
		return nil
	}
	if i := strings.IndexByte(s, '%'); i >= 0 {
		return errors.Errorf("malformed directive at %q", s[i:])
	}
	f.segments = append(f.segments, segment{literal: s})
	return nil
}

// Pattern returns the source pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// Format renders r without a trailing newline.
func (f *Formatter) Format(r Record) string {
	var b strings.Builder
	for _, s := range f.segments {
		if s.field == "" {
			b.WriteString(s.literal)
			continue
		}
		b.WriteString(render(s, r))
	}
	return b.String()
}

func render(s segment, r Record) string {
	verb := s.verb[len(s.verb)-1]
	if verb == 'r' {
		verb = 's'
		s.verb = s.verb[:len(s.verb)-1] + "s"
	}
	switch s.field {
	case "name":
		return fmt.Sprintf(s.verb, r.Name)
	case "asctime":
		return fmt.Sprintf(s.verb, r.Time.Format(asctimeLayout))
	case "levelname":
		return fmt.Sprintf(s.verb, r.Level.String())
	case "message":
		return fmt.Sprintf(s.verb, r.Message)
	}

	var n float64
	switch s.field {
	case "levelno":
		n = float64(r.Level)
	case "process":
		n = float64(os.Getpid())
	case "created":
		n = float64(r.Time.UnixNano()) / float64(time.Second)
	}
	switch verb {
	case 'd':
		return fmt.Sprintf(s.verb, int64(n))
	case 'f':
		return fmt.Sprintf(s.verb, n)
	default:
		return fmt.Sprintf(s.verb, strconv.FormatFloat(n, 'f', -1, 64))
	}
}
