package gatelog

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console is the host output primitive receiving rendered lines.
type Console interface {
	Print(line Line)
}

type ConsoleFunc func(Line)

func (f ConsoleFunc) Print(ln Line) { f(ln) }

// StyleProber is implemented by consoles that can report, once at build
// time, whether they render style directives.
type StyleProber interface {
	SupportsStyle() bool
}

var ansiColors = map[Color]lipgloss.Color{
	ColorBlue: lipgloss.Color("4"),
	ColorTeal: lipgloss.Color("6"),
	ColorGray: lipgloss.Color("8"),
	ColorRed:  lipgloss.Color("1"),
}

// TerminalConsole writes LOG and INFO channels to out and WARN and ERROR
// channels to errOut. Styled headers are colored through lipgloss.
type TerminalConsole struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	outR   *lipgloss.Renderer
	errR   *lipgloss.Renderer
	forced bool
}

type TerminalOption func(*TerminalConsole)

// WithColorProfile pins the color profile instead of detecting it from the writers.
func WithColorProfile(p termenv.Profile) TerminalOption {
	return func(c *TerminalConsole) {
		c.outR.SetColorProfile(p)
		c.errR.SetColorProfile(p)
		c.forced = true
	}
}

// NewTerminalConsole defaults to os.Stdout and os.Stderr for nil writers.
func NewTerminalConsole(out, errOut io.Writer, opts ...TerminalOption) *TerminalConsole {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	c := &TerminalConsole{
		out:    out,
		errOut: errOut,
		outR:   lipgloss.NewRenderer(out),
		errR:   lipgloss.NewRenderer(errOut),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SupportsStyle is true when out is a terminal with a color profile, or when
// a color profile was pinned.
func (c *TerminalConsole) SupportsStyle() bool {
	if c.outR.ColorProfile() == termenv.Ascii {
		return false
	}
	return c.forced || isTerminal(c.out)
}

func (c *TerminalConsole) Print(ln Line) {
	w, r := c.out, c.outR
	if ln.Channel == ChannelWarn || ln.Channel == ChannelError {
		w, r = c.errOut, c.errR
	}

	var b strings.Builder
	if ln.Styled() {
		b.WriteString(r.NewStyle().Foreground(ansiColors[ln.Color]).Render(ln.Header))
		b.WriteByte(' ')
	} else {
		b.WriteString(ln.Header)
		if !strings.HasSuffix(ln.Header, " ") {
			b.WriteByte(' ')
		}
	}
	b.WriteString(ln.Message)
	for _, e := range ln.Extras {
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	b.WriteByte('\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(w, b.String())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// discardConsole backs the everything-off logger.
type discardConsole struct{}

func (discardConsole) Print(Line) {}
