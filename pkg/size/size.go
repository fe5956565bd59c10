// Package size describes how wide a table column wants to be.
//
// A Size is either a fixed number of character cells, "auto" (as wide as the
// content), or a star weight that claims a proportional share of whatever
// width is left after fixed and auto columns are satisfied.
package size

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
)

// MaxInt is the largest width the layout engine works with. Arithmetic on
// widths saturates at this value.
const MaxInt = 0x3FFFFFFF

// Unit is the kind of a Size.
type Unit int

const (
	// Auto sizes to content.
	Auto Unit = iota
	// Fixed is an exact number of cells.
	Fixed
	// Star is a proportional share of the remaining width.
	Star
)

// String returns the unit name
func (u Unit) String() string {
	switch u {
	case Auto:
		return "auto"
	case Fixed:
		return "fixed"
	case Star:
		return "star"
	default:
		return "unknown"
	}
}

// Size is an immutable width request. The zero value is Auto.
type Size struct {
	Unit  Unit
	Value int
}

// AutoSize returns the auto size.
func AutoSize() Size {
	return Size{Unit: Auto, Value: 1}
}

// NewFixed returns a fixed size of n cells, clamped to [0, MaxInt].
func NewFixed(n int) Size {
	return Size{Unit: Fixed, Value: Clamp(n, 0, MaxInt)}
}

// NewStar returns a star size with weight w. Weights below one become one.
func NewStar(w int) Size {
	return Size{Unit: Star, Value: Clamp(w, 1, MaxInt)}
}

// IsAuto reports whether s sizes to content.
func (s Size) IsAuto() bool { return s.Unit == Auto }

// IsFixed reports whether s is a fixed width.
func (s Size) IsFixed() bool { return s.Unit == Fixed }

// IsStar reports whether s is a proportional share.
func (s Size) IsStar() bool { return s.Unit == Star }

// Weight returns the star weight, or zero for non-star sizes.
func (s Size) Weight() int {
	if s.Unit != Star {
		return 0
	}
	if s.Value < 1 {
		return 1
	}
	return s.Value
}

// String returns the shorthand form accepted by Parse.
func (s Size) String() string {
	switch s.Unit {
	case Fixed:
		return strconv.Itoa(s.Value)
	case Star:
		if s.Weight() == 1 {
			return "*"
		}
		return strconv.Itoa(s.Weight()) + "*"
	default:
		return "auto"
	}
}

// Parse reads the size shorthand: "auto" (or empty), an integer for a fixed
// width, or "<n>*" / "*" for a star weight.
func Parse(text string) (Size, error) {
	s := strings.TrimSpace(text)
	switch {
	case s == "" || strings.EqualFold(s, "auto"):
		return AutoSize(), nil
	case strings.HasSuffix(s, "*"):
		prefix := strings.TrimSuffix(s, "*")
		if prefix == "" {
			return NewStar(1), nil
		}
		w, err := strconv.Atoi(prefix)
		if err != nil || w < 1 {
			return Size{}, errors.Newf(errors.ErrInvalidSize, "invalid star weight in %q", text).
				WithDetail("value", text)
		}
		return NewStar(w), nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Size{}, errors.Newf(errors.ErrInvalidSize, "invalid size %q", text).
				WithDetail("value", text)
		}
		return NewFixed(n), nil
	}
}

// MustParse is like Parse but panics on error. Meant for literals.
func MustParse(text string) Size {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Add returns a+b, saturating at MaxInt.
func Add(a, b int) int {
	if a >= MaxInt || b >= MaxInt || a > MaxInt-b {
		return MaxInt
	}
	return a + b
}

// Clamp bounds v to [lo, hi]. When lo > hi, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
