package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/saveup/internal/cli"
	"github.com/theirongolddev/saveup/internal/logger"
	"github.com/theirongolddev/saveup/internal/model"
	"github.com/theirongolddev/saveup/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// listState tracks the expense list: selection and name search.
type listState struct {
	cursor  int
	visible []model.Expense // ledger after the search filter, newest first

	searching   bool
	searchInput textinput.Model
	query       string
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "search expenses..."
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

func (a *App) moveCursor(delta int) {
	next := a.list.cursor + delta
	if next < 0 || next >= len(a.list.visible) {
		return
	}
	a.list.cursor = next
}

// updateList handles keys while the expense list has focus.
func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g", "home":
		a.list.cursor = 0
	case "G", "end":
		a.list.cursor = max(0, len(a.list.visible)-1)
	case "d", "delete", "backspace":
		a.deleteSelected()
	case "/":
		a.list.searching = true
		a.list.searchInput = newSearchInput()
		a.list.searchInput.SetValue(a.list.query)
		cmd := a.list.searchInput.Focus()
		return a, cmd
	case "esc":
		if a.list.query != "" {
			a.list.query = ""
			a.list.cursor = 0
			a.recompute()
		}
	}
	return a, nil
}

// updateSearch handles key events while in search mode. The filter follows
// the input as it is typed.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.list.searching = false
		return a, nil
	case "esc":
		a.list.searching = false
		a.list.query = ""
		a.list.cursor = 0
		a.recompute()
		return a, nil
	}

	var cmd tea.Cmd
	a.list.searchInput, cmd = a.list.searchInput.Update(msg)
	if q := strings.TrimSpace(a.list.searchInput.Value()); q != a.list.query {
		a.list.query = q
		a.list.cursor = 0
		a.recompute()
	}
	return a, cmd
}

func (a *App) deleteSelected() {
	if a.list.cursor >= len(a.list.visible) {
		return
	}
	e := a.list.visible[a.list.cursor]

	next, ok := a.state.DeleteExpense(e.ID)
	if !ok {
		return
	}
	a.state = next
	a.log.Debug("expense deleted", logger.Expense(e.ID, e.Name, e.Amount.String())...)
	a.setNotice(fmt.Sprintf("Removed %s", e.Name), false)
	a.recompute()
}

// renderExpenseList renders at most maxRows entries, scrolled so the
// selection stays visible, followed by the ledger total.
func (a App) renderExpenseList(width, maxRows int) string {
	t := theme.Active
	focused := a.focus == fieldList

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	var b strings.Builder

	if a.list.searching {
		b.WriteString(mutedStyle.Render("/ "))
		b.WriteString(a.list.searchInput.View())
		b.WriteString("\n")
	} else if a.list.query != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("/ %s  (%d of %d, esc clears)",
			a.list.query, len(a.list.visible), a.state.Len())))
		b.WriteString("\n")
	}

	rows := a.list.visible
	switch {
	case a.state.Len() == 0:
		b.WriteString(mutedStyle.Render("No expenses added yet."))
		b.WriteString("\n")
	case len(rows) == 0:
		b.WriteString(mutedStyle.Render("No expenses match."))
		b.WriteString("\n")
	}

	if maxRows < 1 {
		maxRows = 1
	}
	offset := 0
	if a.list.cursor >= maxRows {
		offset = a.list.cursor - maxRows + 1
	}
	end := min(offset+maxRows, len(rows))

	const dateW = 12
	amountW := 14
	nameW := width - amountW - dateW - 2
	if nameW < 8 {
		nameW = 8
	}

	for i := offset; i < end; i++ {
		e := rows[i]
		name := fmt.Sprintf("%-*s", nameW, truncStr(e.Name, nameW))
		amount := fmt.Sprintf("%*s", amountW, cli.FormatCurrency(e.Amount, a.currency))
		date := fmt.Sprintf("%*s", dateW, e.CreatedAt.Format("Jan 02 15:04"))

		if focused && i == a.list.cursor {
			line := fmt.Sprintf("%s %s %s", name, amount, date)
			b.WriteString(selStyle.Foreground(t.AccentBright).Bold(true).Render(line))
		} else {
			b.WriteString(nameStyle.Render(name))
			b.WriteString(nameStyle.Render(" "))
			b.WriteString(amountStyle.Render(amount))
			b.WriteString(nameStyle.Render(" "))
			b.WriteString(dateStyle.Render(date))
		}
		b.WriteString("\n")
	}
	if hidden := len(rows) - end; hidden > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("… %d more", hidden)))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	label := "Total Expenses"
	total := cli.FormatCurrency(a.figures.TotalExpenses, a.currency)
	gap := max(1, width-lipgloss.Width(label)-lipgloss.Width(total))
	b.WriteString(totalStyle.Render(label + strings.Repeat(" ", gap) + total))

	return b.String()
}
