package zerologadapter

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/gatelog"
)

// Console prints gatelog lines through rs/zerolog.
//
// ChannelLog and ChannelInfo map to zerolog Info, ChannelWarn to Warn and
// ChannelError to Error; the gatelog severity is kept as "severity".
type Console struct {
	l zerolog.Logger
}

var _ gatelog.Console = (*Console)(nil)

func New(l zerolog.Logger) *Console {
	return &Console{l: l}
}

func (c *Console) Print(ln gatelog.Line) {
	lvl := mapChannel(ln.Channel)
	// Fast path: drop early if below logger's min level (no Event allocation).
	if lvl < c.l.GetLevel() {
		return
	}
	ev := c.l.WithLevel(lvl).
		Str("ts", ln.Timestamp).
		Stringer("severity", ln.Level)
	if len(ln.Extras) > 0 {
		strs := make([]string, len(ln.Extras))
		for i := range ln.Extras {
			strs[i] = ln.Extras[i].String()
		}
		ev.Strs("extras", strs)
	}
	ev.Msg(ln.Message)
}

func mapChannel(ch gatelog.Channel) zerolog.Level {
	switch ch {
	case gatelog.ChannelWarn:
		return zerolog.WarnLevel
	case gatelog.ChannelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
