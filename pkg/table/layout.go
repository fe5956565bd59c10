package table

import (
	"github.com/arthur-debert/boxgrid/pkg/size"
	"github.com/arthur-debert/boxgrid/pkg/text"
)

// metrics is the sizing state of one column. Widths exclude padding.
type metrics struct {
	width   size.Size
	min     int
	max     int
	desired int
	// extra is this column's share of the group label demand.
	extra  int
	actual int
}

func baseMetrics(w size.Size, minWidth, maxWidth int) metrics {
	m := metrics{
		width:   w,
		min:     size.Clamp(minWidth, 1, size.MaxInt),
		max:     size.MaxInt,
		desired: -1,
		actual:  -1,
	}
	if maxWidth > 0 {
		m.max = size.Clamp(maxWidth, 1, size.MaxInt)
	}
	if m.max < m.min {
		m.max = m.min
	}
	if w.IsFixed() {
		m.desired = size.Clamp(w.Value, 0, size.MaxInt)
	}
	return m
}

// observe widens the column for one cell's content.
func (m *metrics) observe(c text.Measurements) {
	if !m.width.IsFixed() && c.Width > m.desired {
		m.desired = c.Width
	}
	if c.MinWidth > m.min {
		m.min = c.MinWidth
	}
	if m.max < m.min {
		m.max = m.min
	}
}

// spread hands extra to the star columns in proportion to their weight, or
// evenly to every column when there are none. The rounding remainder goes
// to the last receiving column.
func spread(cols []metrics, extra int) {
	if extra <= 0 || len(cols) == 0 {
		return
	}
	stars, last := 0, -1
	for i, c := range cols {
		if c.width.IsStar() {
			stars = size.Add(stars, c.width.Weight())
			last = i
		}
	}

	given := 0
	if stars > 0 {
		for i := range cols {
			if !cols[i].width.IsStar() {
				continue
			}
			cols[i].extra = int(int64(extra) * int64(cols[i].width.Weight()) / int64(stars))
			given += cols[i].extra
		}
	} else {
		last = len(cols) - 1
		for i := range cols {
			cols[i].extra = extra / len(cols)
			given += cols[i].extra
		}
	}
	cols[last].extra += extra - given
}

type pin int

const (
	unpinned pin = iota
	pinnedMin
	pinnedMax
)

// allocate sets actual on every column so the grid fills viewport, and
// returns the width left for a label spanning all columns. indent is the
// space reserved in the first column for group levels.
func allocate(cols []metrics, viewport, padding, indent, extra int) int {
	n := len(cols)
	if n == 0 {
		return 0
	}
	spread(cols, extra)

	chrome := size.Add(size.Add(n+1, 2*padding*n), indent)
	available := viewport - chrome

	var fixed, minSum, maxSum, starMin, starMax int
	var pending []int
	for i := range cols {
		c := &cols[i]
		// Label demand raises both bounds
		if c.extra > 0 {
			c.min = size.Add(c.min, c.extra)
			c.max = size.Add(c.max, c.extra)
		}
		if c.width.IsStar() {
			starMin = size.Add(starMin, c.min)
			starMax = size.Add(starMax, c.max)
			pending = append(pending, i)
		} else {
			desired := c.desired
			if desired < 0 {
				desired = 0
			}
			c.actual = size.Clamp(size.Add(desired, c.extra), c.min, c.max)
			fixed = size.Add(fixed, c.actual)
		}
		minSum = size.Add(minSum, c.min)
		maxSum = size.Add(maxSum, c.max)
	}
	available = size.Clamp(available, minSum, maxSum)

	if len(pending) > 0 {
		pool := size.Clamp(available-fixed, starMin, starMax)
		distributeStars(cols, pending, pool)
	}

	inner := 0
	for _, c := range cols {
		inner = size.Add(inner, c.actual)
	}
	return size.Add(inner, (n-1)*(2*padding+1))
}

// distributeStars splits pool between the star columns by weight, pinning
// columns whose share falls outside their bounds until the rest agree.
func distributeStars(cols []metrics, pending []int, pool int) {
	state := make(map[int]pin, len(pending))

	free := func() (int, int) {
		rest, stars := pool, 0
		for _, i := range pending {
			switch state[i] {
			case pinnedMin:
				rest -= cols[i].min
			case pinnedMax:
				rest -= cols[i].max
			default:
				stars += cols[i].width.Weight()
			}
		}
		return rest, stars
	}
	share := func(rest, stars, i int) int {
		if rest <= 0 || stars <= 0 {
			return 0
		}
		return int(int64(rest) * int64(cols[i].width.Weight()) / int64(stars))
	}

	for {
		for changed := true; changed; {
			changed = false
			rest, stars := free()
			for _, i := range pending {
				if state[i] == unpinned && cols[i].min > share(rest, stars, i) {
					state[i] = pinnedMin
					changed = true
					break
				}
			}
		}

		rest, stars := free()
		widened := false
		for _, i := range pending {
			if state[i] == unpinned && cols[i].max < share(rest, stars, i) {
				state[i] = pinnedMax
				widened = true
				break
			}
		}
		if !widened {
			break
		}
		// The space released by a max pin may let min pinned columns
		// take a proportional share again.
		for _, i := range pending {
			if state[i] == pinnedMin {
				state[i] = unpinned
			}
		}
	}

	rest, stars := free()
	remainder := rest
	var open []int
	for _, i := range pending {
		c := &cols[i]
		switch state[i] {
		case pinnedMin:
			c.actual = c.min
		case pinnedMax:
			c.actual = c.max
		default:
			c.actual = share(rest, stars, i)
			remainder -= c.actual
			open = append(open, i)
		}
	}
	for k := len(open) - 1; k >= 0 && remainder > 0; k-- {
		c := &cols[open[k]]
		if c.actual < c.max {
			c.actual++
			remainder--
		}
	}
}

// layout sizes the columns for viewport. When the widest group label does
// not fit, one more pass adds the deficit as extra demand; anything still
// missing is truncated at render time.
func (g *grid[T]) layout(viewport int) {
	padding := g.t.def.Padding
	run := func(extra int) ([]metrics, int) {
		cols := make([]metrics, len(g.columns))
		for i, c := range g.columns {
			cols[i] = c.base
			if viewport >= size.MaxInt && cols[i].width.IsStar() {
				cols[i].width = size.AutoSize()
			}
		}
		return cols, allocate(cols, viewport, padding, g.levels, extra)
	}

	cols, labelWidth := run(0)
	if g.labelMin > labelWidth {
		cols, labelWidth = run(g.labelMin - labelWidth)
	}

	for i := range g.columns {
		g.columns[i].base.actual = cols[i].actual
	}
	g.labelWidth = labelWidth

	g.t.log.Debug().
		Int("viewport", viewport).
		Int("label_width", labelWidth).
		Ints("widths", g.widths()).
		Msg("columns allocated")
}

func (g *grid[T]) widths() []int {
	out := make([]int, len(g.columns))
	for i, c := range g.columns {
		out[i] = c.base.actual
	}
	return out
}

// spanWidth is the content width of a cell covering span columns from col,
// including the padding and separators it swallows.
func (g *grid[T]) spanWidth(col, span int) int {
	w := 0
	for c := col; c < col+span && c < len(g.columns); c++ {
		w = size.Add(w, g.columns[c].base.actual)
	}
	return size.Add(w, (span-1)*(2*g.t.def.Padding+1))
}
