// Package border models the six edges of a table border and turns adjacent
// edges into Unicode box-drawing glyphs.
package border

import (
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
)

// Border holds the outer edges plus the inner horizontal and vertical
// separators. The zero value inherits every edge.
type Border struct {
	Top        Line
	Right      Line
	Bottom     Line
	Left       Line
	Horizontal Line
	Vertical   Line
}

// Definition is the object form of a border. Explicit edges win over
// Outside and Inside, which win over All.
type Definition struct {
	All        Line
	Outside    Line
	Inside     Line
	Top        Line
	Right      Line
	Bottom     Line
	Left       Line
	Horizontal Line
	Vertical   Line
}

// New builds a border from one to six lines:
//
//	New(all)
//	New(horizontal, vertical)
//	New(top, sides, bottom)
//	New(top, right, bottom, left)
//	New(top, right, bottom, left, inside)
//	New(top, right, bottom, left, horizontal, vertical)
//
// No arguments yields an all-inherit border. More than six panics.
func New(lines ...Line) Border {
	switch len(lines) {
	case 0:
		return Border{}
	case 1:
		l := lines[0]
		return Border{l, l, l, l, l, l}
	case 2:
		h, v := lines[0], lines[1]
		return Border{Top: h, Right: v, Bottom: h, Left: v, Horizontal: h, Vertical: v}
	case 3:
		top, sides, bottom := lines[0], lines[1], lines[2]
		return Border{
			Top: top, Right: sides, Bottom: bottom, Left: sides,
			Horizontal: Shared(top, bottom), Vertical: sides,
		}
	case 4:
		top, right, bottom, left := lines[0], lines[1], lines[2], lines[3]
		return Border{
			Top: top, Right: right, Bottom: bottom, Left: left,
			Horizontal: Shared(top, bottom), Vertical: Shared(right, left),
		}
	case 5:
		return Border{
			Top: lines[0], Right: lines[1], Bottom: lines[2], Left: lines[3],
			Horizontal: lines[4], Vertical: lines[4],
		}
	case 6:
		return Border{lines[0], lines[1], lines[2], lines[3], lines[4], lines[5]}
	default:
		panic("border.New: at most six lines")
	}
}

// FromDefinition resolves the object form of a border.
func FromDefinition(d Definition) Border {
	pick := func(specific, group Line) Line {
		if specific != Inherit {
			return specific
		}
		if group != Inherit {
			return group
		}
		return d.All
	}
	return Border{
		Top:        pick(d.Top, d.Outside),
		Right:      pick(d.Right, d.Outside),
		Bottom:     pick(d.Bottom, d.Outside),
		Left:       pick(d.Left, d.Outside),
		Horizontal: pick(d.Horizontal, d.Inside),
		Vertical:   pick(d.Vertical, d.Inside),
	}
}

// Parse reads the whitespace separated shorthand, one token per argument of
// New.
func Parse(text string) (Border, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 || len(tokens) > 6 {
		return Border{}, errors.Newf(errors.ErrInvalidBorder, "border %q needs one to six lines, got %d", text, len(tokens)).
			WithDetail("value", text)
	}
	lines := make([]Line, len(tokens))
	for i, tok := range tokens {
		l, err := ParseLine(tok)
		if err != nil {
			return Border{}, err
		}
		lines[i] = l
	}
	return New(lines...), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Border {
	b, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the shortest shorthand that Parse turns back into b.
func (b Border) String() string {
	return strings.Join(b.tokens(), " ")
}

func (b Border) tokens() []string {
	s := func(ls ...Line) []string {
		out := make([]string, len(ls))
		for i, l := range ls {
			out[i] = l.String()
		}
		return out
	}
	sidesEqual := b.Right == b.Left && b.Left == b.Vertical
	switch {
	case b.Top == b.Right && b.Top == b.Bottom && b.Top == b.Left && b.Top == b.Horizontal && b.Top == b.Vertical:
		return s(b.Top)
	case b.Top == b.Bottom && b.Top == b.Horizontal && sidesEqual:
		return s(b.Top, b.Right)
	case sidesEqual && b.Horizontal == Shared(b.Top, b.Bottom):
		return s(b.Top, b.Right, b.Bottom)
	case b.Horizontal == Shared(b.Top, b.Bottom) && b.Vertical == Shared(b.Right, b.Left):
		return s(b.Top, b.Right, b.Bottom, b.Left)
	case b.Horizontal == b.Vertical:
		return s(b.Top, b.Right, b.Bottom, b.Left, b.Horizontal)
	default:
		return s(b.Top, b.Right, b.Bottom, b.Left, b.Horizontal, b.Vertical)
	}
}

// Inherit fills every inherit edge of b from parent.
func (b Border) Inherit(parent Border) Border {
	fill := func(own, p Line) Line {
		if own == Inherit {
			return p
		}
		return own
	}
	return Border{
		Top:        fill(b.Top, parent.Top),
		Right:      fill(b.Right, parent.Right),
		Bottom:     fill(b.Bottom, parent.Bottom),
		Left:       fill(b.Left, parent.Left),
		Horizontal: fill(b.Horizontal, parent.Horizontal),
		Vertical:   fill(b.Vertical, parent.Vertical),
	}
}

// Resolve turns any edge still inheriting into None.
func (b Border) Resolve() Border {
	return b.Inherit(New(None))
}

// AsRow keeps the edges a row controls: top, bottom and the horizontal
// separator.
func (b Border) AsRow() Border {
	return Border{Top: b.Top, Bottom: b.Bottom, Horizontal: b.Horizontal}
}

// AsGroup is AsRow; a row group spans whole rows.
func (b Border) AsGroup() Border {
	return b.AsRow()
}

// AsColumn keeps left, right and the vertical separator.
func (b Border) AsColumn() Border {
	return Border{Right: b.Right, Left: b.Left, Vertical: b.Vertical}
}

// AsCell keeps the four outer edges. A cell has no inner separators.
func (b Border) AsCell() Border {
	return Border{Top: b.Top, Right: b.Right, Bottom: b.Bottom, Left: b.Left}
}

// AdjustToAbove reconciles b with the cells directly above its left and
// right ends. Either may be nil.
func (b Border) AdjustToAbove(aboveLeft, aboveRight *Border) Border {
	if aboveLeft != nil {
		b.Top = Shared(aboveLeft.Bottom, b.Top)
		b.Left = Contiguous(aboveLeft.Left, b.Left)
		b.Vertical = Contiguous(aboveLeft.Vertical, b.Vertical)
	}
	if aboveRight != nil {
		b.Top = Shared(aboveRight.Bottom, b.Top)
		b.Right = Contiguous(aboveRight.Right, b.Right)
		b.Vertical = Contiguous(aboveRight.Vertical, b.Vertical)
	}
	return b
}

// AdjustToLeft reconciles b with the cells directly left of its top and
// bottom ends. Either may be nil.
func (b Border) AdjustToLeft(leftTop, leftBottom *Border) Border {
	if leftTop != nil {
		b.Top = Contiguous(leftTop.Top, b.Top)
		b.Left = Shared(leftTop.Right, b.Left)
		b.Horizontal = Contiguous(leftTop.Horizontal, b.Horizontal)
	}
	if leftBottom != nil {
		b.Bottom = Contiguous(leftBottom.Bottom, b.Bottom)
		b.Left = Shared(leftBottom.Right, b.Left)
		b.Horizontal = Contiguous(leftBottom.Horizontal, b.Horizontal)
	}
	return b
}
