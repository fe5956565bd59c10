// Package text measures, wraps and aligns cell content. Widths are visible
// terminal cells, so embedded ANSI escape sequences count as zero.
package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Token is a word or a line break found by Scan. Pos is where the token
// starts including the whitespace before it, Start where the word itself
// starts. End is exclusive. All three are byte offsets.
type Token struct {
	Pos     int
	Start   int
	End     int
	NewLine bool
}

// Scan splits text into words and line breaks. "\r\n", "\r" and "\n" each
// produce one NewLine token.
func Scan(text string) []Token {
	var tokens []Token
	pos := 0
	i := 0
	for i < len(text) {
		switch c := text[i]; {
		case c == '\r':
			end := i + 1
			if end < len(text) && text[end] == '\n' {
				end++
			}
			tokens = append(tokens, Token{Pos: pos, Start: i, End: end, NewLine: true})
			i, pos = end, end
		case c == '\n':
			tokens = append(tokens, Token{Pos: pos, Start: i, End: i + 1, NewLine: true})
			i, pos = i+1, i+1
		default:
			r, n := utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				i += n
				continue
			}
			start := i
			for i < len(text) {
				r, n = utf8.DecodeRuneInString(text[i:])
				if unicode.IsSpace(r) {
					break
				}
				i += n
			}
			tokens = append(tokens, Token{Pos: pos, Start: start, End: i})
			pos = i
		}
	}
	return tokens
}

// Width returns the visible width of s.
func Width(s string) int {
	return ansi.StringWidth(s)
}
