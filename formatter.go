package gatelog

import "time"

// Channel is the leveled print operation a console line is written on.
type Channel uint8

const (
	ChannelLog Channel = iota
	ChannelInfo
	ChannelWarn
	ChannelError
)

func (c Channel) String() string {
	switch c {
	case ChannelInfo:
		return "info"
	case ChannelWarn:
		return "warn"
	case ChannelError:
		return "error"
	default:
		return "log"
	}
}

type Color string

const (
	ColorNone Color = ""
	ColorBlue Color = "blue"
	ColorTeal Color = "teal"
	ColorGray Color = "gray"
	ColorRed  Color = "red"
)

// ColorFor maps a level to the header color used by the styled variant.
func ColorFor(l Level) Color {
	switch l {
	case LevelTrace:
		return ColorBlue
	case LevelDebug:
		return ColorTeal
	case LevelInfo, LevelLog:
		return ColorGray
	case LevelWarn, LevelError:
		return ColorRed
	default:
		return ColorNone
	}
}

// ChannelFor maps a level to the print channel used by the plain variant.
func ChannelFor(l Level) Channel {
	switch l {
	case LevelWarn:
		return ChannelWarn
	case LevelError:
		return ChannelError
	case LevelInfo:
		return ChannelInfo
	default:
		return ChannelLog
	}
}

// Line is one rendered console output.
type Line struct {
	Level     Level
	Channel   Channel
	Timestamp string
	Header    string
	Color     Color // ColorNone for the plain variant
	Message   string
	Extras    []Extra
}

// Styled reports whether the line carries a style directive.
func (ln Line) Styled() bool { return ln.Color != ColorNone }

// Args returns the print arguments in order: header (plus style directive for
// styled lines), message, then extras.
func (ln Line) Args() []string {
	args := make([]string, 0, len(ln.Extras)+3)
	if ln.Styled() {
		args = append(args, "%c"+ln.Header, "color:"+string(ln.Color))
	} else {
		args = append(args, ln.Header)
	}
	args = append(args, ln.Message)
	for _, e := range ln.Extras {
		args = append(args, e.String())
	}
	return args
}

// Formatter renders a serialized message into a console Line.
type Formatter interface {
	Render(level Level, message string, extras []Extra, at time.Time) Line
}

// PlainFormatter emits "<ts> [LEVEL] " on a severity-specific channel.
type PlainFormatter struct{}

func (PlainFormatter) Render(level Level, message string, extras []Extra, at time.Time) Line {
	ts := formatTimestamp(at)
	return Line{
		Level:     level,
		Channel:   ChannelFor(level),
		Timestamp: ts,
		Header:    ts + " [" + level.String() + "] ",
		Message:   message,
		Extras:    extras,
	}
}

// StyledFormatter emits a colored "<ts> [LEVEL]" header, always on ChannelLog.
type StyledFormatter struct{}

func (StyledFormatter) Render(level Level, message string, extras []Extra, at time.Time) Line {
	ts := formatTimestamp(at)
	return Line{
		Level:     level,
		Channel:   ChannelLog,
		Timestamp: ts,
		Header:    ts + " [" + level.String() + "]",
		Color:     ColorFor(level),
		Message:   message,
		Extras:    extras,
	}
}
