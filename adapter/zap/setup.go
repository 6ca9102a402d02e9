package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/gatelog"
)

// Config is an explicit, code-first configuration for zap + gatelog.
type Config struct {
	Logger             gatelog.Config
	Writer             io.Writer             // default: os.Stdout
	Console            bool                  // console encoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
}

// NewZap builds the zap logger described by cfg. Zap itself lets every line
// through; thresholds are gatelog's job.
func NewZap(cfg Config) *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:     "", // gatelog injects "ts"
			LevelKey:    "level",
			MessageKey:  "message",
			LineEnding:  zapcore.DefaultLineEnding,
			EncodeLevel: zapcore.LowercaseLevelEncoder,
		}
	} else {
		encCfg.TimeKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// Use builds a zap-backed gatelog Logger from cfg, sets it as the global
// logger and returns it. Extra builder options (transport, clock) can be
// applied through customize.
func Use(cfg Config, customize ...func(*gatelog.Builder)) (*gatelog.Logger, error) {
	console := NewWithTimestampKey(NewZap(cfg), cfg.TimestampFieldName)
	return gatelog.Use(cfg.Logger, append([]func(*gatelog.Builder){
		func(b *gatelog.Builder) { b.WithConsole(console) },
	}, customize...)...)
}
