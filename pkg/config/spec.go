package config

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/arthur-debert/boxgrid/pkg/border"
	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/arthur-debert/boxgrid/pkg/records"
	"github.com/arthur-debert/boxgrid/pkg/size"
	"github.com/arthur-debert/boxgrid/pkg/style"
	"github.com/arthur-debert/boxgrid/pkg/table"
	"github.com/arthur-debert/boxgrid/pkg/terminal"
)

// StyleSpec is the textual form of a style. Empty fields inherit.
type StyleSpec struct {
	Border        string `koanf:"border"`
	Align         string `koanf:"align"`
	VerticalAlign string `koanf:"vertical_align"`
	Foreground    string `koanf:"foreground"`
	Background    string `koanf:"background"`
}

// TableSpec is a table definition as read from configuration.
type TableSpec struct {
	StyleSpec `koanf:",squash"`

	Padding         int    `koanf:"padding"`
	Width           int    `koanf:"width"`
	Color           string `koanf:"color"`
	DefaultRowRules bool   `koanf:"default_row_rules"`

	Columns     []ColumnSpec     `koanf:"columns"`
	Groups      []GroupSpec      `koanf:"groups"`
	GroupRules  []GroupRuleSpec  `koanf:"group_rules"`
	ColumnRules []ColumnRuleSpec `koanf:"column_rules"`
	RowRules    []RowRuleSpec    `koanf:"row_rules"`
	CellRules   []CellRuleSpec   `koanf:"cell_rules"`
}

// ColumnSpec describes one column. A nil Header shows the key.
type ColumnSpec struct {
	StyleSpec `koanf:",squash"`

	Key      string  `koanf:"key"`
	Header   *string `koanf:"header"`
	Footer   string  `koanf:"footer"`
	Width    string  `koanf:"width"`
	MinWidth int     `koanf:"min_width"`
	MaxWidth int     `koanf:"max_width"`
}

// GroupSpec groups records by the value of a field. Header and Footer are
// text/template strings with the group key as .Key.
type GroupSpec struct {
	StyleSpec `koanf:",squash"`

	By     string `koanf:"by"`
	Header string `koanf:"header"`
	Footer string `koanf:"footer"`
}

type GroupRuleSpec struct {
	StyleSpec `koanf:",squash"`

	Depth *int    `koanf:"depth"`
	Key   *string `koanf:"key"`
}

type ColumnRuleSpec struct {
	StyleSpec `koanf:",squash"`

	Tags []string `koanf:"tags"`
	Key  string   `koanf:"key"`
}

type RowRuleSpec struct {
	StyleSpec `koanf:",squash"`

	Tags []string `koanf:"tags"`
	When *When    `koanf:"when"`
}

type CellRuleSpec struct {
	StyleSpec `koanf:",squash"`

	Tags []string `koanf:"tags"`
	Key  string   `koanf:"key"`
	When *When    `koanf:"when"`
}

// When matches records whose field, printed, equals Equals. Not inverts
// the match.
type When struct {
	Field  string `koanf:"field"`
	Equals string `koanf:"equals"`
	Not    bool   `koanf:"not"`
}

// Build validates the configuration and converts it to a table definition. Every
// shorthand is parsed here, so a bad value fails before anything renders.
func (s *TableSpec) Build() (table.Definition[records.Record], error) {
	var def table.Definition[records.Record]

	color, err := terminal.ParseColorMode(s.Color)
	if err != nil {
		return def, errors.Wrap(err, errors.ErrConfigValid, "invalid color mode").
			WithDetail("color", s.Color)
	}
	base, err := s.StyleSpec.build("table")
	if err != nil {
		return def, err
	}

	def = table.Definition[records.Record]{
		Padding: s.Padding,
		Width:   s.Width,
		Color:   color,
		Style:   base,
		Field: func(r records.Record, key string) (any, bool) {
			return r.Field(key)
		},
	}
	if s.Width < table.WidthUnbounded {
		return def, errors.Newf(errors.ErrConfigValid, "width must be -1, 0 or positive, got %d", s.Width).
			WithDetail("width", s.Width)
	}

	for i, c := range s.Columns {
		col, err := c.build(i)
		if err != nil {
			return def, err
		}
		def.Columns = append(def.Columns, col)
	}
	for i, g := range s.Groups {
		grp, err := g.build(i)
		if err != nil {
			return def, err
		}
		def.Groups = append(def.Groups, grp)
	}

	for i, r := range s.GroupRules {
		st, err := r.StyleSpec.build(fmt.Sprintf("group_rules[%d]", i))
		if err != nil {
			return def, err
		}
		rule := table.GroupRule{Depth: r.Depth, Style: st}
		if r.Key != nil {
			want := *r.Key
			rule.Match = func(key any, _ int) bool { return printed(key) == want }
		}
		def.GroupRules = append(def.GroupRules, rule)
	}

	for i, r := range s.ColumnRules {
		st, err := r.StyleSpec.build(fmt.Sprintf("column_rules[%d]", i))
		if err != nil {
			return def, err
		}
		def.ColumnRules = append(def.ColumnRules, table.ColumnRule{Tags: r.Tags, Key: r.Key, Style: st})
	}

	def.RowRules = []table.RowRule[records.Record]{}
	if s.DefaultRowRules {
		def.RowRules = append(def.RowRules, table.RowRule[records.Record]{Defaults: true})
	}
	for i, r := range s.RowRules {
		where := fmt.Sprintf("row_rules[%d]", i)
		st, err := r.StyleSpec.build(where)
		if err != nil {
			return def, err
		}
		rule := table.RowRule[records.Record]{Tags: r.Tags, Style: st}
		if r.When != nil {
			match, err := r.When.predicate(where)
			if err != nil {
				return def, err
			}
			rule.Match = match
		}
		def.RowRules = append(def.RowRules, rule)
	}

	for i, r := range s.CellRules {
		where := fmt.Sprintf("cell_rules[%d]", i)
		st, err := r.StyleSpec.build(where)
		if err != nil {
			return def, err
		}
		rule := table.CellRule[records.Record]{Tags: r.Tags, Key: r.Key, Style: st}
		if r.When != nil {
			match, err := r.When.predicate(where)
			if err != nil {
				return def, err
			}
			rule.Match = func(rec records.Record, _ string) bool { return match(rec) }
		}
		def.CellRules = append(def.CellRules, rule)
	}

	return def, nil
}

func (s StyleSpec) build(where string) (style.Style, error) {
	var st style.Style
	var err error
	wrap := func(err error, field, value string) error {
		return errors.Wrapf(err, errors.GetErrorCode(err), "%s: invalid %s", where, field).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if strings.TrimSpace(s.Border) != "" {
		if st.Border, err = border.Parse(s.Border); err != nil {
			return st, wrap(err, "border", s.Border)
		}
	}
	if st.Align, err = style.ParseAlign(s.Align); err != nil {
		return st, wrap(err, "align", s.Align)
	}
	if st.VerticalAlign, err = style.ParseVerticalAlign(s.VerticalAlign); err != nil {
		return st, wrap(err, "vertical_align", s.VerticalAlign)
	}
	if st.Foreground, err = style.ParseColor(s.Foreground); err != nil {
		return st, wrap(err, "foreground", s.Foreground)
	}
	if st.Background, err = style.ParseColor(s.Background); err != nil {
		return st, wrap(err, "background", s.Background)
	}
	return st, nil
}

func (c ColumnSpec) build(i int) (table.Column[records.Record], error) {
	where := fmt.Sprintf("columns[%d]", i)
	var col table.Column[records.Record]
	if c.Key == "" {
		return col, errors.Newf(errors.ErrConfigValid, "%s: key is required", where)
	}

	w, err := size.Parse(c.Width)
	if err != nil {
		return col, errors.Wrapf(err, errors.ErrInvalidSize, "%s: invalid width", where).
			WithDetail("value", c.Width)
	}
	st, err := c.StyleSpec.build(where)
	if err != nil {
		return col, err
	}

	col = table.Column[records.Record]{
		Key:      c.Key,
		Header:   c.Key,
		Footer:   c.Footer,
		Width:    w,
		MinWidth: c.MinWidth,
		MaxWidth: c.MaxWidth,
		Style:    st,
	}
	if c.Header != nil {
		col.Header = *c.Header
	}
	return col, nil
}

func (g GroupSpec) build(i int) (table.Group[records.Record], error) {
	where := fmt.Sprintf("groups[%d]", i)
	var grp table.Group[records.Record]
	if g.By == "" {
		return grp, errors.Newf(errors.ErrConfigValid, "%s: by is required", where)
	}
	st, err := g.StyleSpec.build(where)
	if err != nil {
		return grp, err
	}

	field := g.By
	grp = table.Group[records.Record]{
		By: func(r records.Record) any {
			v, _ := r.Field(field)
			return v
		},
		Style: st,
	}
	if g.Header != "" {
		if grp.Header, err = labelTemplate(where+".header", g.Header); err != nil {
			return grp, err
		}
	}
	if g.Footer != "" {
		if grp.Footer, err = labelTemplate(where+".footer", g.Footer); err != nil {
			return grp, err
		}
	}
	return grp, nil
}

// labelTemplate compiles a group label. A template that fails at render
// time falls back to the bare key.
func labelTemplate(name, text string) (func(key any) string, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "%s: invalid template", name).
			WithDetail("template", text)
	}
	return func(key any) string {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, struct{ Key any }{Key: key}); err != nil {
			return printed(key)
		}
		return sb.String()
	}, nil
}

func (w When) predicate(where string) (func(records.Record) bool, error) {
	if w.Field == "" {
		return nil, errors.Newf(errors.ErrConfigValid, "%s: when.field is required", where)
	}
	return func(r records.Record) bool {
		v, _ := r.Field(w.Field)
		return (printed(v) == w.Equals) != w.Not
	}, nil
}

// printed formats a value the way a cell shows it.
func printed(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
