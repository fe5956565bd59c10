package table

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/border"
	"github.com/arthur-debert/boxgrid/pkg/size"
	"github.com/arthur-debert/boxgrid/pkg/style"
	"github.com/arthur-debert/boxgrid/pkg/text"
)

// LineEnd terminates every grid line.
var LineEnd = lineEnd()

func lineEnd() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// painter accumulates output and emits color changes lazily, only when the
// requested foreground or background differs from the active one.
type painter struct {
	sb    strings.Builder
	color bool
	fg    style.Color
	bg    style.Color
	used  bool
}

func (p *painter) paint(s string, fg, bg style.Color) {
	if p.color {
		if fg != p.fg {
			if fg == style.ColorInherit {
				p.sb.WriteString(style.ResetForeground)
			} else {
				p.sb.WriteString(fg.ForegroundSequence())
				p.used = true
			}
			p.fg = fg
		}
		if bg != p.bg {
			if bg == style.ColorInherit {
				p.sb.WriteString(style.ResetBackground)
			} else {
				p.sb.WriteString(bg.BackgroundSequence())
				p.used = true
			}
			p.bg = bg
		}
	}
	p.sb.WriteString(s)
}

func (p *painter) eol() {
	p.paint("", style.ColorInherit, style.ColorInherit)
	p.sb.WriteString(LineEnd)
}

func (p *painter) String() string {
	if p.used {
		return p.sb.String() + style.ResetAll
	}
	return p.sb.String()
}

// arrange wraps every cell to its final width and sets row heights.
func (g *grid[T]) arrange() {
	for i := range g.cells {
		c := &g.cells[i]
		c.width = g.spanWidth(c.column, c.span)
	}
	for r := range g.rows {
		rw := &g.rows[r]
		rw.height = 1
		for _, idx := range rw.cells {
			c := &g.cells[idx]
			if h := text.Measure(c.text, c.width).Height; h > rw.height {
				rw.height = h
			}
		}
		for _, idx := range rw.cells {
			c := &g.cells[idx]
			c.lines = text.Fit(c.text, c.width, rw.height, c.style.Align, c.style.VerticalAlign)
		}
	}
}

// padding returns the spaces left and right of a cell's content. The first
// column carries the group indentation: body cells are pushed right, header
// and footer cells are widened on the right, and labels sit at their depth.
func (g *grid[T]) padding(c *cell) (int, int) {
	p := g.t.def.Padding
	if c.column != 0 || g.levels == 0 {
		return p, p
	}
	if c.label {
		depth := g.groups[c.group].depth
		return p + depth, p + g.levels - depth
	}
	if g.rows[c.row].kind == bodyRow {
		return p + g.levels, p
	}
	return p, p + g.levels
}

func (g *grid[T]) render(color bool) string {
	if len(g.columns) == 0 {
		return ""
	}
	g.arrange()

	p := &painter{color: color}
	for r := range g.rows {
		if g.hasRule(r) {
			g.ruleLine(p, r)
		}
		g.contentLines(p, r)
	}
	if g.hasRule(len(g.rows)) {
		g.ruleLine(p, len(g.rows))
	}
	return p.String()
}

// hasRule reports whether any column draws a line above row r.
func (g *grid[T]) hasRule(r int) bool {
	for c := range g.columns {
		if border.HorizontalLine(g.borderAt(r-1, c), g.borderAt(r, c)).Visible() {
			return true
		}
	}
	return false
}

// ruleLine draws the horizontal boundary above row r.
func (g *grid[T]) ruleLine(p *painter, r int) {
	fg, bg := g.t.style.Foreground, g.t.style.Background
	var sb strings.Builder
	for c := 0; c <= len(g.columns); c++ {
		sb.WriteRune(g.corner(r, c))
		if c == len(g.columns) {
			break
		}
		run := 2*g.t.def.Padding + g.columns[c].base.actual
		if c == 0 {
			run = size.Add(run, g.levels)
		}
		h := border.HorizontalRun(g.borderAt(r-1, c), g.borderAt(r, c))
		sb.WriteString(text.Repeat(string(h), run))
	}
	p.paint(sb.String(), fg, bg)
	p.eol()
}

// corner is the junction above row r at the left edge of column c. A cell
// spanning both sides of the junction contributes no stroke across it.
func (g *grid[T]) corner(r, c int) rune {
	tl, tr := g.borderAt(r-1, c-1), g.borderAt(r-1, c)
	bl, br := g.borderAt(r, c-1), g.borderAt(r, c)
	if tl != nil && tl == tr {
		a, b := *tl, *tr
		a.Right, b.Left = border.None, border.None
		tl, tr = &a, &b
	}
	if bl != nil && bl == br {
		a, b := *bl, *br
		a.Right, b.Left = border.None, border.None
		bl, br = &a, &b
	}
	return border.Corner(tl, tr, bl, br)
}

func (g *grid[T]) contentLines(p *painter, r int) {
	rw := &g.rows[r]
	fg, bg := g.t.style.Foreground, g.t.style.Background
	for k := 0; k < rw.height; k++ {
		var last *cell
		for _, idx := range rw.cells {
			c := &g.cells[idx]
			p.paint(string(border.VerticalRun(g.borderAt(r, c.column-1), &c.style.Border)), fg, bg)

			left, right := g.padding(c)
			cfg, cbg := c.style.Foreground, c.style.Background
			p.paint(text.Repeat(" ", left), cfg, cbg)
			p.paint(c.lines[k], cfg, cbg)
			p.paint(text.Repeat(" ", right), cfg, cbg)
			last = c
		}
		if last != nil {
			p.paint(string(border.VerticalRun(&last.style.Border, nil)), fg, bg)
		}
		p.eol()
	}
}
