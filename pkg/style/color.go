package style

import (
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/muesli/termenv"
)

// Color is one of the sixteen ANSI colors, or ColorInherit.
type Color int

const (
	ColorInherit Color = iota
	Black
	DarkRed
	DarkGreen
	DarkYellow
	DarkBlue
	DarkMagenta
	DarkCyan
	Gray
	DarkGray
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// SGR resets for a single channel and for everything.
const (
	ResetForeground = termenv.CSI + "39m"
	ResetBackground = termenv.CSI + "49m"
	ResetAll        = termenv.CSI + termenv.ResetSeq + "m"
)

var colorNames = map[Color]string{
	ColorInherit: "inherit",
	Black:        "black",
	DarkRed:      "dark-red",
	DarkGreen:    "dark-green",
	DarkYellow:   "dark-yellow",
	DarkBlue:     "dark-blue",
	DarkMagenta:  "dark-magenta",
	DarkCyan:     "dark-cyan",
	Gray:         "gray",
	DarkGray:     "dark-gray",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Blue:         "blue",
	Magenta:      "magenta",
	Cyan:         "cyan",
	White:        "white",
}

var colorAliases = map[string]Color{
	"grey":           Gray,
	"dark-grey":      DarkGray,
	"dark-white":     Gray,
	"bright-black":   DarkGray,
	"bright-red":     Red,
	"bright-green":   Green,
	"bright-yellow":  Yellow,
	"bright-blue":    Blue,
	"bright-magenta": Magenta,
	"bright-cyan":    Cyan,
	"bright-white":   White,
}

// String returns the color name
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor parses a color name. The empty string means inherit.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ColorInherit, nil
	}
	for c, cn := range colorNames {
		if cn == n {
			return c, nil
		}
	}
	if c, ok := colorAliases[n]; ok {
		return c, nil
	}
	return ColorInherit, errors.Newf(errors.ErrInvalidStyle, "unknown color %q", name).
		WithDetail("value", name)
}

// ansi returns the termenv palette entry. Black..Gray are the eight normal
// colors, DarkGray..White the bright ones.
func (c Color) ansi() termenv.ANSIColor {
	return termenv.ANSIColor(int(c) - 1)
}

// ForegroundSequence returns the escape sequence that selects c as text
// color, or ResetForeground for ColorInherit.
func (c Color) ForegroundSequence() string {
	if c == ColorInherit {
		return ResetForeground
	}
	return termenv.CSI + c.ansi().Sequence(false) + "m"
}

// BackgroundSequence returns the escape sequence that selects c as
// background color, or ResetBackground for ColorInherit.
func (c Color) BackgroundSequence() string {
	if c == ColorInherit {
		return ResetBackground
	}
	return termenv.CSI + c.ansi().Sequence(true) + "m"
}

// Colors lists every concrete color in palette order.
func Colors() []Color {
	out := make([]Color, 0, len(colorNames)-1)
	for c := Black; c <= White; c++ {
		out = append(out, c)
	}
	return out
}
