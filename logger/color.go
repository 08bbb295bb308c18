package logger

import (
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Color names a console foreground color.
type Color string

// Console colors. Matching is case-insensitive; any other value, including
// NoColor, renders without a color code.
const (
	NoColor Color = ""
	Black   Color = "BLACK"
	Red     Color = "RED"
	Green   Color = "GREEN"
	Yellow  Color = "YELLOW"
	Blue    Color = "BLUE"
	Purple  Color = "PURPLE"
	Cyan    Color = "CYAN"
	White   Color = "WHITE"
)

var foreground = map[Color]color.Attribute{
	Black:  color.FgBlack,
	Red:    color.FgRed,
	Green:  color.FgGreen,
	Yellow: color.FgYellow,
	Blue:   color.FgBlue,
	Purple: color.FgMagenta,
	Cyan:   color.FgCyan,
	White:  color.FgWhite,
}

// style is the console rendering of one level.
type style struct {
	color  Color
	light  bool
	prefix string
}

var levelStyles = map[Level]style{
	DebugLevel:    {color: Blue, light: true, prefix: "*"},
	InfoLevel:     {color: Green, prefix: "+"},
	WarningLevel:  {color: Yellow, prefix: "-"},
	ErrorLevel:    {color: Red, prefix: "!"},
	CriticalLevel: {color: Red, light: true, prefix: "!"},
}

// Option overrides the console rendering of a single message.
type Option func(*style)

// WithColor overrides the level's default console color.
func WithColor(c Color) Option {
	return func(s *style) { s.color = c }
}

// WithLight overrides the level's default intensity; true renders bold.
func WithLight(light bool) Option {
	return func(s *style) { s.light = light }
}

// paint builds "ESC[<0|1>;<code>m" ... "ESC[0m" for c and light.
func paint(c Color, light bool) *color.Color {
	intensity := color.Reset
	if light {
		intensity = color.Bold
	}
	p := color.New(intensity)
	if fg, ok := foreground[Color(strings.ToUpper(string(c)))]; ok {
		p.Add(fg)
	}
	// Console echo is always colored, whatever NO_COLOR or the tty says.
	p.EnableColor()
	return p
}

// Serializes console echo across loggers and goroutines.
var echoMutex sync.Mutex

// echo writes one "[prefix] message" line in one call.
func echo(out io.Writer, s style, message string) error {
	line := paint(s.color, s.light).Sprint("["+s.prefix+"] "+message) + "\n"
	echoMutex.Lock()
	defer echoMutex.Unlock()
	_, err := io.WriteString(out, line)
	return err
}
