package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/boxgrid/pkg/border"
	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/arthur-debert/boxgrid/pkg/records"
	"github.com/arthur-debert/boxgrid/pkg/size"
	"github.com/arthur-debert/boxgrid/pkg/style"
	"github.com/arthur-debert/boxgrid/pkg/table"
	"github.com/arthur-debert/boxgrid/pkg/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG search somewhere empty.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "etc"))
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	spec, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, spec.Padding)
	assert.Equal(t, 0, spec.Width)
	assert.Equal(t, "auto", spec.Color)
	assert.True(t, spec.DefaultRowRules)
	assert.Equal(t, "left", spec.Align)
	assert.Empty(t, spec.Columns)
}

func TestLoadTOMLFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "table.toml"), `
padding = 2
border = "double"

[[columns]]
key = "name"
header = "Name"
width = "2*"

[[columns]]
key = "age"
align = "right"

[[groups]]
by = "team"
header = "Team {{.Key}}"

[[row_rules]]
tags = ["odd-row"]
background = "dark-gray"
`)

	spec, err := Load(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 2, spec.Padding)
	assert.Equal(t, "double", spec.Border)
	require.Len(t, spec.Columns, 2)
	assert.Equal(t, "Name", *spec.Columns[0].Header)
	assert.Equal(t, "2*", spec.Columns[0].Width)
	assert.Nil(t, spec.Columns[1].Header)
	assert.Equal(t, "right", spec.Columns[1].Align)
	assert.Equal(t, "team", spec.Groups[0].By)
	assert.Equal(t, []string{"odd-row"}, spec.RowRules[0].Tags)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "table.yaml"), `
width: 60
columns:
  - key: name
    max_width: 10
cell_rules:
  - key: name
    when:
      field: name
      equals: Bob
    foreground: red
`)

	spec, err := Load(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 60, spec.Width)
	assert.Equal(t, 10, spec.Columns[0].MaxWidth)
	require.NotNil(t, spec.CellRules[0].When)
	assert.Equal(t, "Bob", spec.CellRules[0].When.Equals)
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "boxgrid", "table.toml"), "padding = 3\n")

	spec, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Padding)
}

func TestLoadEnvAndOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BOXGRID_WIDTH", "100")
	t.Setenv("BOXGRID_PADDING", "4")
	t.Setenv("BOXGRID_VERTICAL_ALIGN", "middle")

	spec, err := Load(Options{Overrides: map[string]interface{}{"padding": 0}})
	require.NoError(t, err)
	assert.Equal(t, 100, spec.Width)
	assert.Equal(t, 0, spec.Padding)
	assert.Equal(t, "middle", spec.VerticalAlign)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{Path: filepath.Join(dir, "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	bad := writeFile(t, filepath.Join(dir, "bad.toml"), "padding = = 1\n")
	_, err = Load(Options{Path: bad})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	wrongType := writeFile(t, filepath.Join(dir, "type.toml"), "padding = \"wide\"\n")
	_, err = Load(Options{Path: wrongType})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func strPtr(s string) *string { return &s }

func TestBuild(t *testing.T) {
	spec := &TableSpec{
		StyleSpec:       StyleSpec{Border: "single none", Foreground: "cyan"},
		Padding:         1,
		Color:           "never",
		DefaultRowRules: true,
		Columns: []ColumnSpec{
			{Key: "name", Width: "*", MinWidth: 4},
			{Key: "age", Header: strPtr("Years"), StyleSpec: StyleSpec{Align: "right"}},
		},
		RowRules: []RowRuleSpec{{Tags: []string{"even-row"}, StyleSpec: StyleSpec{Background: "blue"}}},
	}

	def, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, terminal.ColorNever, def.Color)
	assert.Equal(t, border.New(border.Single, border.None), def.Style.Border)
	assert.Equal(t, style.Cyan, def.Style.Foreground)

	require.Len(t, def.Columns, 2)
	assert.Equal(t, "name", def.Columns[0].Header)
	assert.Equal(t, size.NewStar(1), def.Columns[0].Width)
	assert.Equal(t, 4, def.Columns[0].MinWidth)
	assert.Equal(t, "Years", def.Columns[1].Header)
	assert.Equal(t, style.AlignRight, def.Columns[1].Style.Align)

	require.Len(t, def.RowRules, 2)
	assert.True(t, def.RowRules[0].Defaults)
	assert.Equal(t, style.Blue, def.RowRules[1].Style.Background)

	v, ok := def.Field(records.New(records.Pair{Name: "age", Value: 3}), "age")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestBuildWithoutDefaultRowRules(t *testing.T) {
	def, err := (&TableSpec{}).Build()
	require.NoError(t, err)
	assert.NotNil(t, def.RowRules)
	assert.Empty(t, def.RowRules)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		spec TableSpec
		code errors.ErrorCode
	}{
		{"bad color mode", TableSpec{Color: "sometimes"}, errors.ErrConfigValid},
		{"bad border", TableSpec{StyleSpec: StyleSpec{Border: "dotted"}}, errors.ErrInvalidBorder},
		{"bad foreground", TableSpec{StyleSpec: StyleSpec{Foreground: "mauve"}}, errors.ErrInvalidStyle},
		{"bad width", TableSpec{Width: -5}, errors.ErrConfigValid},
		{"column without key", TableSpec{Columns: []ColumnSpec{{}}}, errors.ErrConfigValid},
		{"bad column width", TableSpec{Columns: []ColumnSpec{{Key: "a", Width: "wide"}}}, errors.ErrInvalidSize},
		{"bad column align", TableSpec{Columns: []ColumnSpec{{Key: "a", StyleSpec: StyleSpec{Align: "justify"}}}}, errors.ErrInvalidStyle},
		{"group without field", TableSpec{Groups: []GroupSpec{{}}}, errors.ErrConfigValid},
		{"bad group template", TableSpec{Groups: []GroupSpec{{By: "a", Header: "{{.Key"}}}, errors.ErrConfigValid},
		{"when without field", TableSpec{RowRules: []RowRuleSpec{{When: &When{Equals: "x"}}}}, errors.ErrConfigValid},
		{"bad cell rule style", TableSpec{CellRules: []CellRuleSpec{{StyleSpec: StyleSpec{Background: "plaid"}}}}, errors.ErrInvalidStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Build()
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
		})
	}
}

func TestBuildUnknownTagFailsAtNew(t *testing.T) {
	spec := &TableSpec{RowRules: []RowRuleSpec{{Tags: []string{"last-column"}}}}
	def, err := spec.Build()
	require.NoError(t, err)

	_, err = table.New(def)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidClassTag))
}

func TestWhenPredicate(t *testing.T) {
	match, err := When{Field: "team", Equals: "red"}.predicate("test")
	require.NoError(t, err)

	red := records.New(records.Pair{Name: "team", Value: "red"})
	blue := records.New(records.Pair{Name: "team", Value: "blue"})
	none := records.New()
	assert.True(t, match(red))
	assert.False(t, match(blue))
	assert.False(t, match(none))

	not, err := When{Field: "team", Equals: "", Not: true}.predicate("test")
	require.NoError(t, err)
	assert.True(t, not(red))
	assert.False(t, not(none))
}

func TestLabelTemplate(t *testing.T) {
	label, err := labelTemplate("header", "Team {{.Key}} ({{printf \"%T\" .Key}})")
	require.NoError(t, err)
	assert.Equal(t, "Team 7 (int)", label(7))

	broken, err := labelTemplate("header", "{{.Key.Missing}}")
	require.NoError(t, err)
	assert.Equal(t, "x", broken("x"))
}

func TestBuildRendersGroupedRecords(t *testing.T) {
	spec := &TableSpec{
		Padding:         1,
		DefaultRowRules: true,
		Columns:         []ColumnSpec{{Key: "name"}},
		Groups:          []GroupSpec{{By: "team", Header: "{{.Key}}:"}},
		GroupRules:      []GroupRuleSpec{{Key: strPtr("red"), StyleSpec: StyleSpec{Align: "right"}}},
	}
	def, err := spec.Build()
	require.NoError(t, err)
	def.Terminal = terminal.Static{}

	tbl, err := table.New(def)
	require.NoError(t, err)

	recs := []records.Record{
		records.New(records.Pair{Name: "name", Value: "Ann"}, records.Pair{Name: "team", Value: "red"}),
		records.New(records.Pair{Name: "name", Value: "Bo"}, records.Pair{Name: "team", Value: "blue"}),
	}
	out, err := tbl.Render(recs, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, table.LineEnd), table.LineEnd)
	assert.Equal(t, []string{
		"┌────────┐",
		"│ name   │",
		"├────────┤",
		"│  red:  │",
		"├────────┤",
		"│    Ann │",
		"├────────┤",
		"│ blue:  │",
		"├────────┤",
		"│  Bo    │",
		"└────────┘",
	}, lines)
}
