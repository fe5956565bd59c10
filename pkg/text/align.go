package text

import (
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/style"
	"github.com/charmbracelet/x/ansi"
)

// Repeat returns s repeated n times, or "" when n is not positive.
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// AlignHorizontal pads every line to exactly width visible cells. Center
// alignment puts the odd cell of slack on the right. Lines wider than width
// are truncated.
func AlignHorizontal(lines []string, width int, align style.HorizontalAlign) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		w := Width(line)
		if w > width {
			line = ansi.Truncate(line, width, "")
			w = Width(line)
		}
		slack := width - w
		switch align {
		case style.AlignRight:
			out[i] = Repeat(" ", slack) + line
		case style.AlignCenter:
			left := slack / 2
			out[i] = Repeat(" ", left) + line + Repeat(" ", slack-left)
		default:
			out[i] = line + Repeat(" ", slack)
		}
	}
	return out
}

// AlignVertical adds blank lines until there are height lines. Middle
// alignment puts the odd blank line at the bottom.
func AlignVertical(lines []string, height int, align style.VerticalAlign) []string {
	slack := height - len(lines)
	if slack <= 0 {
		return lines
	}
	var before int
	switch align {
	case style.VAlignBottom:
		before = slack
	case style.VAlignMiddle:
		before = slack / 2
	}
	out := make([]string, 0, height)
	for i := 0; i < before; i++ {
		out = append(out, "")
	}
	out = append(out, lines...)
	for len(out) < height {
		out = append(out, "")
	}
	return out
}

// Fit wraps text to width and aligns it into a width by height block.
func Fit(text string, width, height int, align style.HorizontalAlign, valign style.VerticalAlign) []string {
	lines := Wrap(text, width)
	lines = AlignVertical(lines, height, valign)
	return AlignHorizontal(lines, width, align)
}
