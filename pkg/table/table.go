// Package table renders records as a grid of box-drawing characters.
//
// A Definition describes the columns, optional nested grouping, and a set of
// style rules that cascade from the table through row groups, rows and
// columns down to individual cells. Render lays the grid out against a
// viewport width and returns the text.
package table

import (
	"io"

	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/arthur-debert/boxgrid/pkg/logging"
	"github.com/arthur-debert/boxgrid/pkg/size"
	"github.com/arthur-debert/boxgrid/pkg/style"
	"github.com/arthur-debert/boxgrid/pkg/terminal"
	"github.com/rs/zerolog"
)

const (
	// DefaultWidth is the viewport used when the output is not a terminal
	// and no width was configured.
	DefaultWidth = 75
	// WidthUnbounded sizes the grid to its content.
	WidthUnbounded = -1
)

// Column describes one column. Value extracts the cell content; when it is
// nil the table falls back to Definition.Field, then to introspecting the
// item by Key.
type Column[T any] struct {
	Key      string
	Header   string
	Footer   string
	Width    size.Size
	MinWidth int
	// MaxWidth of zero means unlimited.
	MaxWidth int
	Value    func(item T) any
	Style    style.Style
}

// Group is one level of nested grouping. Header defaults to the key itself,
// Footer to nothing; a func returning "" suppresses that row.
type Group[T any] struct {
	By     func(item T) any
	Header func(key any) string
	Footer func(key any) string
	Style  style.Style
}

// GroupRule styles row groups. Depth, Key and Match each narrow the rule
// when set.
type GroupRule struct {
	Depth *int
	Key   any
	Match func(key any, depth int) bool
	Style style.Style
}

// ColumnRule styles columns selected by class tags, key or predicate.
type ColumnRule struct {
	Tags  []string
	Key   string
	Match func(key string, index int) bool
	Style style.Style
}

// RowRule styles rows selected by class tags or a predicate on the row's
// record. Defaults expands to the built-in header and footer separators.
type RowRule[T any] struct {
	Defaults bool
	Tags     []string
	Match    func(item T) bool
	Style    style.Style
}

// CellRule styles cells selected by class tags, column key or predicate.
// Cell rules cannot change borders.
type CellRule[T any] struct {
	Tags  []string
	Key   string
	Match func(item T, key string) bool
	Style style.Style
}

// Definition is the full configuration of a table.
type Definition[T any] struct {
	// Padding is the number of spaces on each side of cell content.
	Padding int
	// Width is 0 for automatic, a positive cap, or WidthUnbounded.
	Width int
	Color terminal.ColorMode
	Style style.Style

	Columns []Column[T]
	Groups  []Group[T]

	GroupRules  []GroupRule
	ColumnRules []ColumnRule
	// RowRules nil means the default header and footer separators only.
	RowRules  []RowRule[T]
	CellRules []CellRule[T]

	// Field looks up a named value on an item for columns without Value.
	Field func(item T, key string) (any, bool)

	Terminal terminal.Probe
	Logger   *zerolog.Logger
}

// Depth is a convenience for GroupRule.Depth.
func Depth(d int) *int {
	return &d
}

// Table is a validated Definition ready to render. A Table may be rendered
// any number of times but not from several goroutines at once.
type Table[T any] struct {
	def      Definition[T]
	style    style.Style
	rowRules []RowRule[T]
	probe    terminal.Probe
	log      zerolog.Logger
}

// New validates def and returns a table. Invalid class tags or incomplete
// group levels are reported here rather than at render time.
func New[T any](def Definition[T]) (*Table[T], error) {
	if err := validateRules(def); err != nil {
		return nil, err
	}
	for i, g := range def.Groups {
		if g.By == nil {
			return nil, errors.Newf(errors.ErrConfigValid, "group level %d has no key selector", i).
				WithDetail("level", i)
		}
	}
	if def.Padding < 0 {
		def.Padding = 0
	}

	t := &Table[T]{
		def:   def,
		style: def.Style.AsTable(),
		probe: def.Terminal,
	}
	if t.probe == nil {
		t.probe = terminal.Default()
	}
	if def.Logger != nil {
		t.log = def.Logger.With().Str("component", "table").Logger()
	} else {
		t.log = *logging.Nop()
	}
	t.rowRules = expandRowRules(def.RowRules, t.style)
	return t, nil
}

// Style returns the resolved table style.
func (t *Table[T]) Style() style.Style {
	return t.style
}

// Render lays out items and returns the grid. When out is not nil the text
// is also written to it in one call.
func (t *Table[T]) Render(items []T, out io.Writer) (string, error) {
	done := logging.LogOperationStart(t.log, "render")
	defer done()

	g := newGrid(t, items)
	g.resolveStyles()

	viewport := t.viewport(out)
	g.layout(viewport)

	color := t.def.Color.Enabled(t.probe, out)
	text := g.render(color)

	t.log.Debug().
		Int("viewport", viewport).
		Int("columns", len(g.columns)).
		Int("rows", len(g.rows)).
		Int("cells", len(g.cells)).
		Bool("color", color).
		Msg("table rendered")

	if out != nil {
		if _, err := io.WriteString(out, text); err != nil {
			return text, errors.Wrap(err, errors.ErrRenderWrite, "failed to write table")
		}
	}
	return text, nil
}

// viewport is the total line width the grid may use.
func (t *Table[T]) viewport(out io.Writer) int {
	if t.def.Width == WidthUnbounded {
		return size.MaxInt
	}
	if t.probe.IsTerminal(out) {
		vp := DefaultWidth
		if cols := t.probe.Columns(out); cols > 0 {
			vp = cols - 2
		}
		if t.def.Width > 0 && t.def.Width < vp {
			vp = t.def.Width
		}
		return vp
	}
	if t.def.Width > 0 {
		return t.def.Width
	}
	return DefaultWidth
}
