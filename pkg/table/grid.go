package table

import (
	"slices"

	"github.com/arthur-debert/boxgrid/pkg/size"
	"github.com/arthur-debert/boxgrid/pkg/style"
	"github.com/arthur-debert/boxgrid/pkg/text"
)

// A grid owns every entity of one render. Entities refer to each other by
// index into the grid's slices, with -1 meaning none.

type rowKind int

const (
	headerRow rowKind = iota
	groupHeaderRow
	bodyRow
	groupFooterRow
	footerRow
)

type column[T any] struct {
	def   Column[T]
	index int
	tags  []string
	style style.Style
	// base is what the content asks for. Each allocation pass works on a
	// copy.
	base metrics
}

type rowGroup struct {
	depth    int
	parent   int
	children []int
	key      any
	style    style.Style
}

type row[T any] struct {
	kind    rowKind
	group   int
	item    T
	hasItem bool
	tags    []string
	cells   []int
	cellAt  []int
	height  int
	style   style.Style
}

type cell struct {
	row    int
	column int
	span   int
	group  int
	label  bool
	tags   []string
	text   string
	style  style.Style
	width  int
	lines  []string
}

type grid[T any] struct {
	t       *Table[T]
	columns []column[T]
	groups  []rowGroup
	rows    []row[T]
	cells   []cell
	// levels is the number of group levels present, which is also the
	// indentation reserved in the first column.
	levels     int
	labelMin   int
	labelWidth int
}

func newGrid[T any](t *Table[T], items []T) *grid[T] {
	g := &grid[T]{t: t}

	defs := t.def.Columns
	if len(defs) == 0 {
		defs = inferColumns(items)
	}
	g.columns = make([]column[T], len(defs))
	for i, def := range defs {
		g.columns[i] = column[T]{
			def:   def,
			index: i,
			tags:  columnTagsFor(i, len(defs)),
			base:  baseMetrics(def.Width, def.MinWidth, def.MaxWidth),
		}
	}

	g.build(items)
	return g
}

func (g *grid[T]) build(items []T) {
	var hasHeader, hasFooter bool
	for _, c := range g.columns {
		hasHeader = hasHeader || c.def.Header != ""
		hasFooter = hasFooter || c.def.Footer != ""
	}

	if hasHeader {
		r := g.addRow(headerRow, -1, []string{TagHeader})
		for i, c := range g.columns {
			g.addCell(r, i, c.def.Header)
		}
	}

	if len(g.t.def.Groups) > 0 && len(items) > 0 {
		g.levels = len(g.t.def.Groups)
		g.addGroups(items, 0, -1)
	} else {
		g.addBody(items, -1)
	}

	if hasFooter {
		r := g.addRow(footerRow, -1, []string{TagFooter})
		for i, c := range g.columns {
			g.addCell(r, i, c.def.Footer)
		}
	}
}

func (g *grid[T]) addGroups(items []T, depth, parent int) {
	level := g.t.def.Groups[depth]
	for _, b := range groupBy(items, level.By) {
		gi := len(g.groups)
		g.groups = append(g.groups, rowGroup{depth: depth, parent: parent, key: b.key})
		if parent >= 0 {
			g.groups[parent].children = append(g.groups[parent].children, gi)
		}

		header := formatValue(b.key)
		if level.Header != nil {
			header = level.Header(b.key)
		}
		if header != "" {
			g.addLabelRow(groupHeaderRow, gi, []string{TagGroup, TagHeader}, header)
		}

		if depth+1 < len(g.t.def.Groups) {
			g.addGroups(b.items, depth+1, gi)
		} else {
			g.addBody(b.items, gi)
		}

		if level.Footer != nil {
			if footer := level.Footer(b.key); footer != "" {
				g.addLabelRow(groupFooterRow, gi, []string{TagGroup, TagFooter}, footer)
			}
		}
	}
}

func (g *grid[T]) addBody(items []T, group int) {
	for i, item := range items {
		r := g.addRow(bodyRow, group, bodyRowTags(i, len(items), group >= 0))
		g.rows[r].item = item
		g.rows[r].hasItem = true
		for c := range g.columns {
			g.addCell(r, c, g.cellText(item, c))
		}
	}
}

func (g *grid[T]) addLabelRow(kind rowKind, group int, tags []string, label string) {
	r := g.addRow(kind, group, tags)
	idx := g.appendCell(r, 0, len(g.columns), label)
	g.cells[idx].label = true
	if m := text.Measure(label, size.MaxInt); m.MinWidth > g.labelMin {
		g.labelMin = m.MinWidth
	}
}

func (g *grid[T]) addRow(kind rowKind, group int, tags []string) int {
	cellAt := make([]int, len(g.columns))
	for i := range cellAt {
		cellAt[i] = -1
	}
	g.rows = append(g.rows, row[T]{kind: kind, group: group, tags: tags, cellAt: cellAt})
	return len(g.rows) - 1
}

// addCell adds a regular cell and lets its column observe the content.
func (g *grid[T]) addCell(r, col int, content string) {
	idx := g.appendCell(r, col, 1, content)
	c := &g.cells[idx]
	c.tags = append(slices.Clone(g.rows[r].tags), g.columns[col].tags...)
	g.columns[col].base.observe(text.Measure(content, size.MaxInt))
}

func (g *grid[T]) appendCell(r, col, span int, content string) int {
	idx := len(g.cells)
	rw := &g.rows[r]
	g.cells = append(g.cells, cell{
		row:    r,
		column: col,
		span:   span,
		group:  rw.group,
		tags:   rw.tags,
		text:   content,
	})
	rw.cells = append(rw.cells, idx)
	for c := col; c < col+span; c++ {
		rw.cellAt[c] = idx
	}
	return idx
}

func (g *grid[T]) cellText(item T, col int) string {
	def := g.columns[col].def
	if def.Value != nil {
		return formatValue(def.Value(item))
	}
	if g.t.def.Field != nil {
		v, _ := g.t.def.Field(item, def.Key)
		return formatValue(v)
	}
	v, _ := lookupField(item, def.Key)
	return formatValue(v)
}

// cellAt returns the cell covering (r, c), or nil outside the grid.
func (g *grid[T]) cellAt(r, c int) *cell {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.columns) {
		return nil
	}
	idx := g.rows[r].cellAt[c]
	if idx < 0 {
		return nil
	}
	return &g.cells[idx]
}
