package boxgrid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Colors for CLI messages, switching with the terminal background
var (
	errorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	mutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}
)

var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	DetailStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)
)

// FormatError renders err for the terminal. Structured errors get their
// code and details on separate lines.
func FormatError(err error) string {
	var sb strings.Builder
	sb.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return sb.String()
	}
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteString("\n")
	sb.WriteString(DetailStyle.Render("code: " + string(code)))
	for _, k := range keys {
		sb.WriteString("\n")
		sb.WriteString(DetailStyle.Render(fmt.Sprintf("%s: %v", k, details[k])))
	}
	return sb.String()
}
