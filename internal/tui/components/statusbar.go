package components

import (
	"strings"

	"github.com/theirongolddev/saveup/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// KeyHint is one "[key]action" entry of the status bar.
type KeyHint struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the bottom status bar: key hints on the left and
// free text on the right.
func RenderStatusBar(width int, hints []KeyHint, right string) string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	fill := lipgloss.NewStyle().Background(t.Surface)

	var left strings.Builder
	left.WriteString(fill.Render(" "))
	for i, h := range hints {
		if i > 0 {
			left.WriteString(fill.Render("  "))
		}
		left.WriteString(keyStyle.Render("[" + h.Key + "]"))
		left.WriteString(descStyle.Render(h.Desc))
	}

	rightStr := ""
	if right != "" {
		rightStr = descStyle.Render(right + " ")
	}

	// Pad middle
	padding := width - lipgloss.Width(left.String()) - lipgloss.Width(rightStr)
	if padding < 0 {
		padding = 0
	}

	return left.String() + fill.Render(strings.Repeat(" ", padding)) + rightStr
}
