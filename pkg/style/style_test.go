package style

import (
	"testing"

	"github.com/arthur-debert/boxgrid/pkg/border"
	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroStyleInheritsEverything(t *testing.T) {
	var s Style
	assert.Equal(t, Default, s.Inherit(Default))
	assert.Equal(t, Default, s.AsTable())
}

func TestInheritIdempotent(t *testing.T) {
	styles := []Style{
		{},
		Default,
		{Align: AlignRight, Background: Cyan},
		{Border: border.New(border.Double, border.Inherit), VerticalAlign: VAlignMiddle, Foreground: Red},
	}
	for _, s := range styles {
		assert.Equal(t, s, s.Inherit(s))
	}
}

func TestInheritFillsOnlyInheritFields(t *testing.T) {
	child := Style{Align: AlignRight, Foreground: Green}
	parent := Style{
		Border:        border.New(border.Single),
		Align:         AlignCenter,
		VerticalAlign: VAlignBottom,
		Background:    Blue,
		Foreground:    Red,
	}

	got := child.Inherit(parent)
	assert.Equal(t, AlignRight, got.Align)
	assert.Equal(t, Green, got.Foreground)
	assert.Equal(t, VAlignBottom, got.VerticalAlign)
	assert.Equal(t, Blue, got.Background)
	assert.Equal(t, border.New(border.Single), got.Border)
}

func TestProjections(t *testing.T) {
	s := Style{Border: border.New(border.Double), Align: AlignCenter}

	assert.Equal(t, border.Border{Top: border.Double, Bottom: border.Double, Horizontal: border.Double}, s.AsRow().Border)
	assert.Equal(t, s.AsRow(), s.AsGroup())
	assert.Equal(t, border.Border{Right: border.Double, Left: border.Double, Vertical: border.Double}, s.AsColumn().Border)
	assert.Equal(t, border.Border{
		Top: border.Double, Right: border.Double, Bottom: border.Double, Left: border.Double,
	}, s.AsCell().Border)
	assert.Equal(t, AlignCenter, s.AsCell().Align, "projections keep non-border fields")
}

func TestAsTableDefaults(t *testing.T) {
	s := Style{Border: border.Border{Top: border.Double}}.AsTable()
	assert.Equal(t, border.Double, s.Border.Top)
	assert.Equal(t, border.Single, s.Border.Bottom)
	assert.Equal(t, border.Single, s.Border.Vertical)
	assert.Equal(t, border.Inherit, s.Border.Horizontal)
	assert.Equal(t, AlignLeft, s.Align)
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		input string
		want  HorizontalAlign
	}{
		{"", AlignInherit},
		{"inherit", AlignInherit},
		{"left", AlignLeft},
		{"Right", AlignRight},
		{"center", AlignCenter},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlign(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAlign("justify")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidStyle))
}

func TestParseVerticalAlign(t *testing.T) {
	tests := []struct {
		input string
		want  VerticalAlign
	}{
		{"", VAlignInherit},
		{"top", VAlignTop},
		{"bottom", VAlignBottom},
		{"middle", VAlignMiddle},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVerticalAlign(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseVerticalAlign("baseline")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidStyle))
}
