package gologadapter

import (
	"strings"

	"github.com/kataras/golog"

	"github.com/trickstertwo/gatelog"
)

// Console prints gatelog lines through kataras/golog. The leveled channels
// use golog's Info, Warn and Error (which add their own level prefix), the
// generic channel uses Print with the full gatelog header.
type Console struct {
	l *golog.Logger
}

var _ gatelog.Console = (*Console)(nil)

// New wraps an existing golog logger. A nil logger gets golog.New() with its
// own time prefix disabled, since every line carries a timestamp already.
func New(l *golog.Logger) *Console {
	if l == nil {
		l = golog.New().SetTimeFormat("").SetLevel("info")
	}
	return &Console{l: l}
}

func (c *Console) Print(ln gatelog.Line) {
	var b strings.Builder
	if ln.Channel == gatelog.ChannelLog {
		b.WriteString(strings.TrimSpace(ln.Header))
	} else {
		b.WriteString(ln.Timestamp)
	}
	b.WriteByte(' ')
	b.WriteString(ln.Message)
	for _, e := range ln.Extras {
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	text := b.String()

	switch ln.Channel {
	case gatelog.ChannelWarn:
		c.l.Warn(text)
	case gatelog.ChannelError:
		c.l.Error(text)
	case gatelog.ChannelInfo:
		c.l.Info(text)
	default:
		c.l.Println(text)
	}
}
