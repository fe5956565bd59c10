package table

import (
	"cmp"
	"slices"

	"github.com/arthur-debert/boxgrid/pkg/border"
	"github.com/arthur-debert/boxgrid/pkg/style"
)

// match is a rule that survived filtering. count is how many of its
// discriminators applied, index its declaration position.
type match struct {
	count int
	index int
	style style.Style
}

// fold applies the surviving rules to base, least specific first, so the
// most specific rule (and among equals the last declared) wins.
func fold(base style.Style, matches []match) style.Style {
	slices.SortStableFunc(matches, func(a, b match) int {
		if c := cmp.Compare(a.count, b.count); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
	acc := base
	for _, m := range matches {
		acc = m.style.Inherit(acc)
	}
	return acc
}

func (g *grid[T]) matchGroup(rg *rowGroup) style.Style {
	var matches []match
	for i, rule := range g.t.def.GroupRules {
		count := 0
		if rule.Depth != nil {
			if *rule.Depth != rg.depth {
				continue
			}
			count++
		}
		if rule.Key != nil {
			if !sameKey(rule.Key, rg.key) {
				continue
			}
			count++
		}
		if rule.Match != nil {
			if !rule.Match(rg.key, rg.depth) {
				continue
			}
			count++
		}
		matches = append(matches, match{count: count, index: i, style: rule.Style.AsGroup()})
	}

	parent := style.Style{}
	if rg.parent >= 0 {
		parent = g.groups[rg.parent].style
	}
	base := g.t.def.Groups[rg.depth].Style.AsGroup().Inherit(parent)
	return fold(base, matches)
}

func (g *grid[T]) matchColumn(col *column[T]) style.Style {
	var matches []match
	for i, rule := range g.t.def.ColumnRules {
		count, ok := hasAllTags(rule.Tags, col.tags)
		if !ok {
			continue
		}
		if rule.Key != "" {
			if rule.Key != col.def.Key {
				continue
			}
			count++
		}
		if rule.Match != nil {
			if !rule.Match(col.def.Key, col.index) {
				continue
			}
			count++
		}
		matches = append(matches, match{count: count, index: i, style: rule.Style.AsColumn()})
	}
	return fold(col.def.Style.AsColumn(), matches)
}

func (g *grid[T]) matchRow(rw *row[T]) style.Style {
	var matches []match
	for i, rule := range g.t.rowRules {
		count, ok := hasAllTags(rule.Tags, rw.tags)
		if !ok {
			continue
		}
		if rule.Match != nil {
			if !rw.hasItem || !rule.Match(rw.item) {
				continue
			}
			count++
		}
		matches = append(matches, match{count: count, index: i, style: rule.Style.AsRow()})
	}
	return fold(style.Style{}, matches)
}

func (g *grid[T]) matchCell(c *cell) style.Style {
	rw := &g.rows[c.row]
	key := ""
	if !c.label {
		key = g.columns[c.column].def.Key
	}

	var matches []match
	for i, rule := range g.t.def.CellRules {
		count, ok := hasAllTags(rule.Tags, c.tags)
		if !ok {
			continue
		}
		if rule.Key != "" {
			if c.label || rule.Key != key {
				continue
			}
			count++
		}
		if rule.Match != nil {
			if !rw.hasItem || !rule.Match(rw.item, key) {
				continue
			}
			count++
		}
		matches = append(matches, match{count: count, index: i, style: rule.Style.WithBorder(border.Border{})})
	}
	return fold(style.Style{}, matches)
}

// expandRowRules replaces Defaults entries with the built-in separators: a
// line below the header, above the footer, and around group labels. A nil
// slice means defaults only.
func expandRowRules[T any](rules []RowRule[T], table style.Style) []RowRule[T] {
	if rules == nil {
		rules = []RowRule[T]{{Defaults: true}}
	}
	tb := table.Border
	top, bottom := tb.Top, tb.Bottom
	if tb.Horizontal != border.Inherit {
		top, bottom = tb.Horizontal, tb.Horizontal
	}

	var out []RowRule[T]
	for _, r := range rules {
		if !r.Defaults {
			out = append(out, r)
			continue
		}
		out = append(out,
			RowRule[T]{Tags: []string{TagHeader}, Style: style.Style{Border: border.Border{Bottom: bottom}}},
			RowRule[T]{Tags: []string{TagFooter}, Style: style.Style{Border: border.Border{Top: top}}},
			RowRule[T]{Tags: []string{TagGroup, TagHeader}, Style: style.Style{Border: border.Border{Top: top, Bottom: bottom}}},
			RowRule[T]{Tags: []string{TagGroup, TagFooter}, Style: style.Style{Border: border.Border{Top: top, Bottom: bottom}}},
		)
	}
	return out
}

// resolveStyles runs the cascade for every entity, then reconciles the
// borders of neighboring cells.
func (g *grid[T]) resolveStyles() {
	for i := range g.groups {
		g.groups[i].style = g.matchGroup(&g.groups[i])
	}
	for i := range g.columns {
		g.columns[i].style = g.matchColumn(&g.columns[i])
	}
	for i := range g.rows {
		g.rows[i].style = g.matchRow(&g.rows[i])
	}
	for i := range g.cells {
		g.cells[i].style = g.cellStyle(&g.cells[i])
	}
	g.mergeBorders()
}

func (g *grid[T]) cellStyle(c *cell) style.Style {
	tb := g.t.style.Border
	b := border.Border{Top: tb.Top, Right: tb.Right, Bottom: tb.Bottom, Left: tb.Left}
	if c.row > 0 {
		b.Top = tb.Horizontal
	}
	if c.row < len(g.rows)-1 {
		b.Bottom = tb.Horizontal
	}
	if c.column > 0 {
		b.Left = tb.Vertical
	}
	if c.column+c.span < len(g.columns) {
		b.Right = tb.Vertical
	}
	s := g.t.style.WithBorder(b)

	if c.group >= 0 {
		s = g.groups[c.group].style.Inherit(s)
	}
	s = g.rows[c.row].style.Inherit(s)
	if !c.label {
		s = g.columns[c.column].style.Inherit(s)
	}
	s = g.matchCell(c).Inherit(s)
	return s.AsCell()
}

// mergeBorders makes each cell agree with the cells above and to its left,
// then settles any edge still inheriting to none.
func (g *grid[T]) mergeBorders() {
	for i := range g.cells {
		c := &g.cells[i]
		last := c.column + c.span - 1
		b := c.style.Border
		b = b.AdjustToAbove(g.borderAt(c.row-1, c.column), g.borderAt(c.row-1, last))
		left := g.borderAt(c.row, c.column-1)
		b = b.AdjustToLeft(left, left)
		c.style.Border = b
	}
	for i := range g.cells {
		g.cells[i].style.Border = g.cells[i].style.Border.Resolve()
	}
}

func (g *grid[T]) borderAt(r, col int) *border.Border {
	c := g.cellAt(r, col)
	if c == nil {
		return nil
	}
	return &c.style.Border
}
