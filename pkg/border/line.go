package border

import (
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
)

// Line is the style of a single border edge.
type Line int

const (
	// Inherit takes the edge from the enclosing style. It is the zero value.
	Inherit Line = iota
	// None draws no line.
	None
	// Single draws a light line.
	Single
	// Double draws a double line.
	Double
)

// String returns the shorthand token for the line
func (l Line) String() string {
	switch l {
	case None:
		return "none"
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "inherit"
	}
}

// Thickness orders lines for merging: none and inherit are 0, single 1,
// double 2.
func (l Line) Thickness() int {
	switch l {
	case Single:
		return 1
	case Double:
		return 2
	default:
		return 0
	}
}

// Visible reports whether the line draws anything.
func (l Line) Visible() bool {
	return l == Single || l == Double
}

// ParseLine parses a single border token.
func ParseLine(token string) (Line, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	case "none":
		return None, nil
	case "inherit":
		return Inherit, nil
	default:
		return Inherit, errors.Newf(errors.ErrInvalidBorder, "unknown border line %q", token).
			WithDetail("token", token)
	}
}

// Shared picks the line for an edge two neighbors both own. An inherit side
// yields to the other one, otherwise the thicker line wins.
func Shared(a, b Line) Line {
	if a == Inherit {
		return b
	}
	if b == Inherit {
		return a
	}
	if a.Thickness() > b.Thickness() {
		return a
	}
	return b
}

// Contiguous picks the line that continues across a join. A missing line
// always loses to a present one, otherwise the thicker line wins and ties keep
// a.
func Contiguous(a, b Line) Line {
	at, bt := a.Thickness(), b.Thickness()
	if at == 0 || bt == 0 {
		if at == 0 {
			return b
		}
		return a
	}
	if bt > at {
		return b
	}
	return a
}
