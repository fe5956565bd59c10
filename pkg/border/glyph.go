package border

// Edge bits for a junction: which directions a line leaves the junction in,
// and whether the horizontal or vertical strokes are doubled.
const (
	edgeUp uint8 = 1 << iota
	edgeDown
	edgeLeft
	edgeRight
	horizontalDouble
	verticalDouble
)

const blank = ' '

// boxGlyphs maps junction bits to box-drawing runes. Combinations that are not
// listed (a lone stub, for instance) render blank.
var boxGlyphs = map[uint8]rune{
	edgeLeft | edgeRight:                    '─',
	edgeLeft | edgeRight | horizontalDouble: '═',
	edgeUp | edgeDown:                       '│',
	edgeUp | edgeDown | verticalDouble:      '║',

	edgeDown | edgeRight:                                     '┌',
	edgeDown | edgeRight | horizontalDouble:                  '╒',
	edgeDown | edgeRight | verticalDouble:                    '╓',
	edgeDown | edgeRight | horizontalDouble | verticalDouble: '╔',

	edgeDown | edgeLeft:                                     '┐',
	edgeDown | edgeLeft | horizontalDouble:                  '╕',
	edgeDown | edgeLeft | verticalDouble:                    '╖',
	edgeDown | edgeLeft | horizontalDouble | verticalDouble: '╗',

	edgeUp | edgeRight:                                     '└',
	edgeUp | edgeRight | horizontalDouble:                  '╘',
	edgeUp | edgeRight | verticalDouble:                    '╙',
	edgeUp | edgeRight | horizontalDouble | verticalDouble: '╚',

	edgeUp | edgeLeft:                                     '┘',
	edgeUp | edgeLeft | horizontalDouble:                  '╛',
	edgeUp | edgeLeft | verticalDouble:                    '╜',
	edgeUp | edgeLeft | horizontalDouble | verticalDouble: '╝',

	edgeUp | edgeDown | edgeRight:                                     '├',
	edgeUp | edgeDown | edgeRight | horizontalDouble:                  '╞',
	edgeUp | edgeDown | edgeRight | verticalDouble:                    '╟',
	edgeUp | edgeDown | edgeRight | horizontalDouble | verticalDouble: '╠',

	edgeUp | edgeDown | edgeLeft:                                     '┤',
	edgeUp | edgeDown | edgeLeft | horizontalDouble:                  '╡',
	edgeUp | edgeDown | edgeLeft | verticalDouble:                    '╢',
	edgeUp | edgeDown | edgeLeft | horizontalDouble | verticalDouble: '╣',

	edgeDown | edgeLeft | edgeRight:                                     '┬',
	edgeDown | edgeLeft | edgeRight | horizontalDouble:                  '╤',
	edgeDown | edgeLeft | edgeRight | verticalDouble:                    '╥',
	edgeDown | edgeLeft | edgeRight | horizontalDouble | verticalDouble: '╦',

	edgeUp | edgeLeft | edgeRight:                                     '┴',
	edgeUp | edgeLeft | edgeRight | horizontalDouble:                  '╧',
	edgeUp | edgeLeft | edgeRight | verticalDouble:                    '╨',
	edgeUp | edgeLeft | edgeRight | horizontalDouble | verticalDouble: '╩',

	edgeUp | edgeDown | edgeLeft | edgeRight:                                     '┼',
	edgeUp | edgeDown | edgeLeft | edgeRight | horizontalDouble:                  '╪',
	edgeUp | edgeDown | edgeLeft | edgeRight | verticalDouble:                    '╫',
	edgeUp | edgeDown | edgeLeft | edgeRight | horizontalDouble | verticalDouble: '╬',
}

// GlyphFor returns the rune for a junction whose strokes leave to the left,
// right, up and down with the given lines.
func GlyphFor(left, right, up, down Line) rune {
	var bits uint8
	if up.Visible() {
		bits |= edgeUp
	}
	if down.Visible() {
		bits |= edgeDown
	}
	if left.Visible() {
		bits |= edgeLeft
	}
	if right.Visible() {
		bits |= edgeRight
	}
	if left == Double || right == Double {
		bits |= horizontalDouble
	}
	if up == Double || down == Double {
		bits |= verticalDouble
	}
	if r, ok := boxGlyphs[bits]; ok {
		return r
	}
	return blank
}

var empty = Border{Top: None, Right: None, Bottom: None, Left: None, Horizontal: None, Vertical: None}

func orEmpty(b *Border) *Border {
	if b == nil {
		return &empty
	}
	return b
}

// Corner returns the glyph where four cells meet. A nil neighbor means there
// is no cell on that side.
func Corner(topLeft, topRight, bottomLeft, bottomRight *Border) rune {
	tl, tr, bl, br := orEmpty(topLeft), orEmpty(topRight), orEmpty(bottomLeft), orEmpty(bottomRight)
	left := Shared(tl.Bottom, bl.Top)
	right := Shared(tr.Bottom, br.Top)
	up := Shared(tl.Right, tr.Left)
	down := Shared(bl.Right, br.Left)
	return GlyphFor(left, right, up, down)
}

// HorizontalLine returns the line drawn between a cell and the one below it.
func HorizontalLine(top, bottom *Border) Line {
	return Shared(orEmpty(top).Bottom, orEmpty(bottom).Top)
}

// HorizontalRun returns the glyph repeated along the boundary between top and
// bottom.
func HorizontalRun(top, bottom *Border) rune {
	h := HorizontalLine(top, bottom)
	return GlyphFor(h, h, None, None)
}

// VerticalLine returns the line drawn between a cell and the one to its
// right.
func VerticalLine(left, right *Border) Line {
	return Shared(orEmpty(left).Right, orEmpty(right).Left)
}

// VerticalRun returns the glyph repeated along the boundary between left and
// right.
func VerticalRun(left, right *Border) rune {
	v := VerticalLine(left, right)
	return GlyphFor(None, None, v, v)
}
