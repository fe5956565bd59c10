// Package style holds the cascading presentation attributes of tables, row
// groups, rows, columns and cells.
package style

import (
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/border"
	"github.com/arthur-debert/boxgrid/pkg/errors"
)

// HorizontalAlign positions text inside a cell's width.
type HorizontalAlign int

const (
	AlignInherit HorizontalAlign = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// String returns the alignment name
func (a HorizontalAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "inherit"
	}
}

// ParseAlign parses left, right, center or inherit. Empty means inherit.
func ParseAlign(s string) (HorizontalAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inherit":
		return AlignInherit, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	default:
		return AlignInherit, errors.Newf(errors.ErrInvalidStyle, "unknown alignment %q", s).
			WithDetail("value", s)
	}
}

// VerticalAlign positions text inside a row's height.
type VerticalAlign int

const (
	VAlignInherit VerticalAlign = iota
	VAlignTop
	VAlignBottom
	VAlignMiddle
)

// String returns the alignment name
func (a VerticalAlign) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignBottom:
		return "bottom"
	case VAlignMiddle:
		return "middle"
	default:
		return "inherit"
	}
}

// ParseVerticalAlign parses top, bottom, middle or inherit. Empty means
// inherit.
func ParseVerticalAlign(s string) (VerticalAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inherit":
		return VAlignInherit, nil
	case "top":
		return VAlignTop, nil
	case "bottom":
		return VAlignBottom, nil
	case "middle", "center":
		return VAlignMiddle, nil
	default:
		return VAlignInherit, errors.Newf(errors.ErrInvalidStyle, "unknown vertical alignment %q", s).
			WithDetail("value", s)
	}
}

// Style is an immutable set of presentation attributes. Every field has an
// inherit value and the zero Style inherits everything.
type Style struct {
	Border        border.Border
	Align         HorizontalAlign
	VerticalAlign VerticalAlign
	Background    Color
	Foreground    Color
}

// DefaultTableBorder is the border a table gets when it sets none: single
// outside edges and column separators. The horizontal separator is left
// inheriting so the header and footer rules can fall back to top and bottom.
var DefaultTableBorder = border.Border{
	Top:      border.Single,
	Right:    border.Single,
	Bottom:   border.Single,
	Left:     border.Single,
	Vertical: border.Single,
}

// Default is the root of every cascade.
var Default = Style{
	Border: DefaultTableBorder,
	Align:  AlignLeft,
}

// Inherit fills each inherit field of s from parent.
func (s Style) Inherit(parent Style) Style {
	out := s
	out.Border = s.Border.Inherit(parent.Border)
	if out.Align == AlignInherit {
		out.Align = parent.Align
	}
	if out.VerticalAlign == VAlignInherit {
		out.VerticalAlign = parent.VerticalAlign
	}
	if out.Background == ColorInherit {
		out.Background = parent.Background
	}
	if out.Foreground == ColorInherit {
		out.Foreground = parent.Foreground
	}
	return out
}

// WithBorder returns a copy of s with b as its border.
func (s Style) WithBorder(b border.Border) Style {
	s.Border = b
	return s
}

// AsTable completes s from Default.
func (s Style) AsTable() Style {
	return s.Inherit(Default)
}

// AsGroup restricts the border to the edges a row group controls.
func (s Style) AsGroup() Style {
	return s.WithBorder(s.Border.AsGroup())
}

// AsRow restricts the border to the edges a row controls.
func (s Style) AsRow() Style {
	return s.WithBorder(s.Border.AsRow())
}

// AsColumn restricts the border to the edges a column controls.
func (s Style) AsColumn() Style {
	return s.WithBorder(s.Border.AsColumn())
}

// AsCell restricts the border to a cell's own four edges.
func (s Style) AsCell() Style {
	return s.WithBorder(s.Border.AsCell())
}
