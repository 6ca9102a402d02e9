package slogadapter

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/gatelog"
)

// Console prints gatelog lines through log/slog using LogAttrs.
type Console struct {
	l *slog.Logger
}

var _ gatelog.Console = (*Console)(nil)

func New(l *slog.Logger) *Console {
	if l == nil {
		l = slog.Default()
	}
	return &Console{l: l}
}

func toSlog(ch gatelog.Channel) slog.Level {
	switch ch {
	case gatelog.ChannelWarn:
		return slog.LevelWarn
	case gatelog.ChannelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Console) Print(ln gatelog.Line) {
	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs,
		slog.String("ts", ln.Timestamp),
		slog.String("severity", ln.Level.String()),
	)
	if len(ln.Extras) > 0 {
		strs := make([]string, len(ln.Extras))
		for i := range ln.Extras {
			strs[i] = ln.Extras[i].String()
		}
		attrs = append(attrs, slog.Any("extras", strs))
	}
	c.l.LogAttrs(context.Background(), toSlog(ln.Channel), ln.Message, attrs...)
}

// NewJSON returns a Console over a slog JSON handler. The handler's own time
// attribute is dropped; lines carry "ts".
func NewJSON(w io.Writer) *Console {
	return New(slog.New(slog.NewJSONHandler(orStdout(w), handlerOptions())))
}

// NewText returns a Console over a slog text handler.
func NewText(w io.Writer) *Console {
	return New(slog.New(slog.NewTextHandler(orStdout(w), handlerOptions())))
}

func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
