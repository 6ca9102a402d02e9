package gatelog

import (
	"fmt"

	"github.com/trickstertwo/xclock"
)

// Config holds the two thresholds and the remote endpoint. It is read-only
// once a Logger is built from it.
type Config struct {
	Level            Level  `json:"level"`
	ServerLogLevel   Level  `json:"serverLogLevel"`
	ServerLoggingURL string `json:"serverLoggingUrl,omitempty"`
}

// DefaultConfig turns both paths off.
func DefaultConfig() Config {
	return Config{Level: LevelOff, ServerLogLevel: LevelOff}
}

func (c Config) validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("%w: level %d", ErrInvalidLevel, int(c.Level))
	}
	if !c.ServerLogLevel.Valid() {
		return fmt.Errorf("%w: server level %d", ErrInvalidLevel, int(c.ServerLogLevel))
	}
	return nil
}

// Builder separates construction from representation.
type Builder struct {
	cfg       Config
	console   Console
	formatter Formatter
	probe     func() bool
	transport Transport
	adapter   Adapter
	clock     xclock.Clock
	onError   ErrorHandler
}

func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithServerLevel(l Level) *Builder {
	b.cfg.ServerLogLevel = l
	return b
}

func (b *Builder) WithServerURL(url string) *Builder {
	b.cfg.ServerLoggingURL = url
	return b
}

// WithConsole sets the output primitive; defaults to a TerminalConsole on stdout/stderr.
func (b *Builder) WithConsole(c Console) *Builder {
	b.console = c
	return b
}

// WithFormatter bypasses style detection.
func (b *Builder) WithFormatter(f Formatter) *Builder {
	b.formatter = f
	return b
}

// WithStyleProbe overrides the console's own capability report.
func (b *Builder) WithStyleProbe(probe func() bool) *Builder {
	b.probe = probe
	return b
}

func (b *Builder) WithTransport(t Transport) *Builder {
	b.transport = t
	return b
}

// WithAdapter installs a custom adapter from the start, as if
// SetStorageMethod had been called right after Build.
func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.adapter = a
	return b
}

// WithClock pins the time source; by default xclock.Now() is read per path.
func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.clock = c
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.onError = h
	return b
}

// Build constructs the Logger, resolving the formatter variant once.
func (b *Builder) Build() (*Logger, error) {
	if err := b.cfg.validate(); err != nil {
		return nil, err
	}
	console := b.console
	if console == nil {
		console = NewTerminalConsole(nil, nil)
	}
	transport := b.transport
	if transport == nil {
		transport = newDefaultTransport()
	}
	if transport == nil && b.adapter == nil && b.cfg.ServerLoggingURL != "" {
		return nil, ErrNoTransport
	}
	onError := b.onError
	if onError == nil {
		onError = defaultErrorHandler
	}
	return newLogger(b.cfg, console, b.selectFormatter(console), transport, b.adapter, b.clock, onError), nil
}

func (b *Builder) selectFormatter(c Console) Formatter {
	if b.formatter != nil {
		return b.formatter
	}
	styled := false
	if b.probe != nil {
		styled = b.probe()
	} else if p, ok := c.(StyleProber); ok {
		styled = p.SupportsStyle()
	}
	if styled {
		return StyledFormatter{}
	}
	return PlainFormatter{}
}
