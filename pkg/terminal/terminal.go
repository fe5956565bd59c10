// Package terminal answers the questions the renderer asks about its output
// stream: is it a terminal, how wide is it, and should it get color.
package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects whether rendered output carries ANSI color.
type ColorMode int

const (
	// ColorAuto colors output only when the probe says the stream supports it
	ColorAuto ColorMode = iota
	// ColorAlways forces color on
	ColorAlways
	// ColorNever forces color off
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "true", "yes":
		return ColorAlways, nil
	case "never", "off", "false", "no":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrInvalidStyle, "unknown color mode %q", s).
			WithDetail("value", s)
	}
}

// Enabled resolves the mode against a probe for the given stream.
func (m ColorMode) Enabled(p Probe, w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return p != nil && p.SupportsColor(w)
	}
}

// Probe inspects an output stream.
type Probe interface {
	IsTerminal(w io.Writer) bool
	Columns(w io.Writer) int
	SupportsColor(w io.Writer) bool
}

// Default returns the probe backed by the real terminal.
func Default() Probe {
	return systemProbe{}
}

type systemProbe struct{}

func asFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	return f, ok && f != nil
}

// IsTerminal reports whether w is a terminal, cygwin ptys included.
func (systemProbe) IsTerminal(w io.Writer) bool {
	f, ok := asFile(w)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Columns returns the terminal width, or 0 when it cannot be read.
func (systemProbe) Columns(w io.Writer) int {
	f, ok := asFile(w)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// SupportsColor follows the same rules as the help output: NO_COLOR wins,
// pipes get no color, and so does a terminal with an ASCII-only profile.
func (p systemProbe) SupportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !p.IsTerminal(w) {
		return false
	}
	f, _ := asFile(w)
	return termenv.NewOutput(f).Profile != termenv.Ascii
}

// Static is a probe with fixed answers, for tests and for callers that
// already know their output.
type Static struct {
	Terminal bool
	Width    int
	Color    bool
}

func (s Static) IsTerminal(io.Writer) bool    { return s.Terminal }
func (s Static) Columns(io.Writer) int        { return s.Width }
func (s Static) SupportsColor(io.Writer) bool { return s.Color }
