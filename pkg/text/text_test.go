package text

import (
	"strings"
	"testing"

	"github.com/arthur-debert/boxgrid/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tokens := Scan("  ab cd\r\nef\rg\n")
	require.Len(t, tokens, 7)

	assert.Equal(t, Token{Pos: 0, Start: 2, End: 4}, tokens[0])
	assert.Equal(t, Token{Pos: 4, Start: 5, End: 7}, tokens[1])
	assert.Equal(t, Token{Pos: 7, Start: 7, End: 9, NewLine: true}, tokens[2])
	assert.Equal(t, Token{Pos: 9, Start: 9, End: 11}, tokens[3])
	assert.True(t, tokens[4].NewLine)
	assert.Equal(t, "g", "  ab cd\r\nef\rg\n"[tokens[5].Start:tokens[5].End])
	assert.True(t, tokens[6].NewLine)
}

func TestScanEmpty(t *testing.T) {
	assert.Empty(t, Scan(""))
	assert.Empty(t, Scan(" \t "))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks between words", "hello big world", 9, []string{"hello big", "world"}},
		{"exact fit", "ab cd", 5, []string{"ab cd"}},
		{"long word alone", "a extraordinary b", 5, []string{"a", "extraordinary", "b"}},
		{"explicit break", "one\ntwo", 20, []string{"one", "two"}},
		{"crlf", "one\r\ntwo", 20, []string{"one", "two"}},
		{"trailing break", "one\n", 20, []string{"one", ""}},
		{"leading spaces dropped", "   one two", 20, []string{"one two"}},
		{"whitespace only", "   ", 20, []string{""}},
		{"inner spacing kept", "a  b", 20, []string{"a  b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestMeasure(t *testing.T) {
	m := Measure("hello big world", 9)
	assert.Equal(t, Measurements{MinWidth: 5, Width: 9, Height: 2}, m)

	m = Measure("", 10)
	assert.Equal(t, Measurements{MinWidth: 0, Width: 0, Height: 1}, m)

	m = Measure("Alice Smith", 1<<30-1)
	assert.Equal(t, Measurements{MinWidth: 5, Width: 11, Height: 1}, m)
}

func TestMeasureAgreesWithWrap(t *testing.T) {
	texts := []string{
		"",
		"x",
		"   ",
		"one\n",
		"\n\n",
		"a b c d e f g",
		"the quick brown fox jumps over the lazy dog",
		"line one\r\nline two is longer\rthree",
		"\x1b[31mred\x1b[0m and plain words",
		"日本語 テキスト の 折り返し",
		"  leading and trailing  ",
	}
	for _, text := range texts {
		for width := 1; width <= 20; width++ {
			lines := Wrap(text, width)
			m := Measure(text, width)
			require.Equal(t, len(lines), m.Height, "text %q width %d", text, width)

			widest := 0
			for _, l := range lines {
				if w := Width(l); w > widest {
					widest = w
				}
			}
			assert.Equal(t, widest, m.Width, "text %q width %d", text, width)
		}
	}
}

func TestANSIWidth(t *testing.T) {
	colored := "\x1b[31mabc\x1b[0m"
	assert.Equal(t, 3, Width(colored))
	assert.Equal(t, 3, Measure(colored, 10).Width)
	assert.Equal(t, 3, Measure(colored, 10).MinWidth)
}

func TestWideRunes(t *testing.T) {
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, []string{"日本", "語"}, Wrap("日本 語", 5))
}

func TestAlignHorizontal(t *testing.T) {
	lines := []string{"ab", "abc"}
	assert.Equal(t, []string{"ab   ", "abc  "}, AlignHorizontal(lines, 5, style.AlignLeft))
	assert.Equal(t, []string{"ab   ", "abc  "}, AlignHorizontal(lines, 5, style.AlignInherit))
	assert.Equal(t, []string{"   ab", "  abc"}, AlignHorizontal(lines, 5, style.AlignRight))
	assert.Equal(t, []string{" ab  ", " abc "}, AlignHorizontal(lines, 5, style.AlignCenter))
}

func TestAlignHorizontalANSI(t *testing.T) {
	got := AlignHorizontal([]string{"\x1b[1mab\x1b[0m"}, 4, style.AlignRight)
	assert.Equal(t, "  \x1b[1mab\x1b[0m", got[0])
}

func TestAlignHorizontalTruncates(t *testing.T) {
	got := AlignHorizontal([]string{"abcdef"}, 3, style.AlignLeft)
	assert.Equal(t, []string{"abc"}, got)
}

func TestAlignVertical(t *testing.T) {
	lines := []string{"x"}
	assert.Equal(t, []string{"x", "", ""}, AlignVertical(lines, 3, style.VAlignTop))
	assert.Equal(t, []string{"", "", "x"}, AlignVertical(lines, 3, style.VAlignBottom))
	assert.Equal(t, []string{"", "x", ""}, AlignVertical(lines, 3, style.VAlignMiddle))
	assert.Equal(t, []string{"x", ""}, AlignVertical(lines, 2, style.VAlignMiddle))
	assert.Equal(t, []string{"x"}, AlignVertical(lines, 1, style.VAlignBottom))
}

func TestFit(t *testing.T) {
	got := Fit("hello big world", 9, 3, style.AlignRight, style.VAlignBottom)
	assert.Equal(t, []string{
		strings.Repeat(" ", 9),
		"hello big",
		"    world",
	}, got)
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, "", Repeat("─", 0))
	assert.Equal(t, "", Repeat("─", -2))
	assert.Equal(t, "───", Repeat("─", 3))
}
