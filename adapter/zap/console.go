package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/gatelog"
)

// Console prints gatelog lines through go.uber.org/zap.
//
// Mapping:
//   - ChannelLog and ChannelInfo write at zap Info, ChannelWarn at Warn,
//     ChannelError at Error. The gatelog severity travels as "severity".
//   - The line's timestamp is written as tsKey so zap's own clock is not needed.
//   - Extras are written as a string array under "extras" when present.
//
// Uses Logger.Check(level, msg) to avoid building fields when zap filters the line.
type Console struct {
	l     *zap.Logger
	tsKey string
}

var _ gatelog.Console = (*Console)(nil)

func New(l *zap.Logger) *Console {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Console {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Console{l: l, tsKey: tsKey}
}

func (c *Console) Print(ln gatelog.Line) {
	ce := c.l.Check(toZapLevel(ln.Channel), ln.Message)
	if ce == nil {
		return
	}
	zfs := make([]zap.Field, 0, 3)
	zfs = append(zfs,
		zap.String(c.tsKey, ln.Timestamp),
		zap.Stringer("severity", ln.Level),
	)
	if len(ln.Extras) > 0 {
		zfs = append(zfs, zap.Strings("extras", extraStrings(ln.Extras)))
	}
	ce.Write(zfs...)
}

// Sync flushes buffered zap output.
func (c *Console) Sync() error { return c.l.Sync() }

func toZapLevel(ch gatelog.Channel) zapcore.Level {
	switch ch {
	case gatelog.ChannelWarn:
		return zapcore.WarnLevel
	case gatelog.ChannelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func extraStrings(ex []gatelog.Extra) []string {
	out := make([]string, len(ex))
	for i := range ex {
		out[i] = ex[i].String()
	}
	return out
}
