package text

import "github.com/arthur-debert/boxgrid/pkg/size"

// Measurements describe text laid out at some maximum width.
type Measurements struct {
	// MinWidth is the widest single word, the narrowest the text can wrap to.
	MinWidth int
	// Width is the widest wrapped line.
	Width int
	// Height is the number of wrapped lines.
	Height int
}

// Wrap breaks text into lines no wider than maxWidth, breaking only between
// words. A word wider than maxWidth gets a line of its own. Explicit line
// breaks are kept and whitespace at a break is dropped. The result always
// has at least one line.
func Wrap(text string, maxWidth int) []string {
	var lines []string
	line := ""
	lineWidth := 0
	for _, tok := range Scan(text) {
		if tok.NewLine {
			lines = append(lines, line)
			line, lineWidth = "", 0
			continue
		}
		full := text[tok.Pos:tok.End]
		fullWidth := Width(full)
		if lineWidth > 0 && size.Add(lineWidth, fullWidth) > maxWidth {
			lines = append(lines, line)
			line = text[tok.Start:tok.End]
			lineWidth = Width(line)
			continue
		}
		if line == "" {
			// Leading whitespace never starts a line.
			full = text[tok.Start:tok.End]
			fullWidth = Width(full)
		}
		line += full
		lineWidth += fullWidth
	}
	return append(lines, line)
}

// Measure reports the extent of text wrapped at maxWidth. Height always
// equals len(Wrap(text, maxWidth)).
func Measure(text string, maxWidth int) Measurements {
	m := Measurements{Height: 1}
	lineWidth := 0
	started := false
	for _, tok := range Scan(text) {
		if tok.NewLine {
			m.Height++
			lineWidth, started = 0, false
			continue
		}
		wordWidth := Width(text[tok.Start:tok.End])
		fullWidth := Width(text[tok.Pos:tok.End])
		if wordWidth > m.MinWidth {
			m.MinWidth = wordWidth
		}
		switch {
		case lineWidth > 0 && size.Add(lineWidth, fullWidth) > maxWidth:
			m.Height++
			lineWidth = wordWidth
		case !started:
			lineWidth += wordWidth
		default:
			lineWidth += fullWidth
		}
		started = true
		if lineWidth > m.Width {
			m.Width = lineWidth
		}
	}
	return m
}
