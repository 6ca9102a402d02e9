package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/gatelog"
)

// Config is an explicit, code-first configuration for zerolog + gatelog.
type Config struct {
	Logger            gatelog.Config
	Writer            io.Writer // default: os.Stdout
	Console           bool      // pretty console output instead of JSON
	ConsoleTimeFormat string    // only used if Console==true; default time.RFC3339Nano
	NoColor           bool      // only used if Console==true
}

// NewZerolog builds the zerolog logger described by cfg.
func NewZerolog(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		// The line's own "ts" field carries the time; hide the empty column.
		cw.PartsExclude = []string{zerolog.TimestampFieldName}
		return zerolog.New(cw).Level(zerolog.TraceLevel)
	}
	return zerolog.New(w).Level(zerolog.TraceLevel)
}

// Use builds a zerolog-backed gatelog Logger from cfg, sets it as the global
// logger and returns it.
func Use(cfg Config, customize ...func(*gatelog.Builder)) (*gatelog.Logger, error) {
	console := New(NewZerolog(cfg))
	return gatelog.Use(cfg.Logger, append([]func(*gatelog.Builder){
		func(b *gatelog.Builder) { b.WithConsole(console) },
	}, customize...)...)
}
