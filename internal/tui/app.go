// Package tui provides the interactive Bubble Tea planner for saveup.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/saveup/internal/budget"
	"github.com/theirongolddev/saveup/internal/cli"
	"github.com/theirongolddev/saveup/internal/model"
	"github.com/theirongolddev/saveup/internal/pipeline"
	"github.com/theirongolddev/saveup/internal/tui/components"
	"github.com/theirongolddev/saveup/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options configures a new App.
type Options struct {
	State     budget.State // starting session, usually seeded from flags and config
	Currency  string       // ISO 4217 code used for display
	Logger    *zap.Logger
	NeedSetup bool // show the first-run form before the planner
}

// App is the root Bubble Tea model.
type App struct {
	// Session
	state    budget.State
	figures  model.Figures
	currency string
	log      *zap.Logger

	// Inputs, indexed by field
	inputs [fieldList]textinput.Model
	focus  field

	// Expense list
	list listState

	// Last add/delete outcome shown under the expense form
	notice     string
	noticeWarn bool

	// UI state
	width    int
	height   int
	showHelp bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues // shared with setupForm, which writes into it
	needSetup bool
}

const (
	minTerminalWidth = 80
	wideWidth        = 120
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	currency := opts.Currency
	if currency == "" {
		currency = "USD"
	}

	a := App{
		state:     opts.State,
		currency:  currency,
		log:       log,
		needSetup: opts.NeedSetup,
	}
	a.inputs = newInputs(a.state)
	a.setFocus(fieldIncome)

	if a.needSetup {
		vals := newSetupValues(a.state, currency)
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
	}

	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return textinput.Blink
}

func (a *App) recompute() {
	a.figures = pipeline.Derive(a.state)
	a.list.visible = pipeline.FilterExpenses(a.state.Expenses(), a.list.query)

	// Clamp cursor to the new list bounds
	if a.list.cursor >= len(a.list.visible) {
		a.list.cursor = len(a.list.visible) - 1
	}
	if a.list.cursor < 0 {
		a.list.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Expense search intercepts all keys when active
		if a.list.searching {
			return a.updateSearch(msg)
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "tab":
			cmd := a.setFocus((a.focus + 1) % fieldCount)
			return a, cmd
		case "shift+tab":
			cmd := a.setFocus((a.focus + fieldCount - 1) % fieldCount)
			return a, cmd
		}

		if a.focus == fieldList {
			return a.updateList(msg)
		}
		return a.updateInput(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blink for the focused input
	if a.focus < fieldList {
		var cmd tea.Cmd
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) setNotice(msg string, warn bool) {
	a.notice = msg
	a.noticeWarn = warn
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isWideLayout() bool {
	return a.contentWidth() >= wideWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  saveup needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []components.KeyHint
	}{
		{"Inputs", []components.KeyHint{
			{Key: "Tab", Desc: "Next field"},
			{Key: "Shift+Tab", Desc: "Previous field"},
			{Key: "Enter", Desc: "Add expense (expense fields)"},
		}},
		{"Expenses", []components.KeyHint{
			{Key: "j k", Desc: "Move selection"},
			{Key: "d Del", Desc: "Delete selected expense"},
			{Key: "/", Desc: "Search by name"},
			{Key: "Esc", Desc: "Clear search"},
		}},
		{"General", []components.KeyHint{
			{Key: "?", Desc: "Toggle help (expense list)"},
			{Key: "q", Desc: "Quit (expense list)"},
			{Key: "^c", Desc: "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.Key)),
				descStyle.Render(bind.Desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header
	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	headerRow := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := headerRow.Render(logoStyle.Render(" ◈ saveup") +
		subtitleStyle.Render(" · Savings & Expense Planner · "+a.currency))

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.keyHints(), a.statusRight())

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Planner content, truncated and padded to exactly contentH lines
	content := a.renderPlanner(cw, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) keyHints() []components.KeyHint {
	if a.list.searching {
		return []components.KeyHint{{Key: "enter", Desc: "apply"}, {Key: "esc", Desc: "cancel"}}
	}
	if a.focus == fieldList {
		return []components.KeyHint{
			{Key: "j/k", Desc: "move"},
			{Key: "d", Desc: "delete"},
			{Key: "/", Desc: "search"},
			{Key: "tab", Desc: "fields"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}
	hints := []components.KeyHint{{Key: "tab", Desc: "next"}, {Key: "shift+tab", Desc: "prev"}}
	if a.focus == fieldExpenseName || a.focus == fieldExpenseAmount {
		hints = append(hints, components.KeyHint{Key: "enter", Desc: "add expense"})
	}
	return append(hints, components.KeyHint{Key: "^c", Desc: "quit"})
}

func (a App) statusRight() string {
	n := a.state.Len()
	if n == 1 {
		return "1 expense"
	}
	return cli.FormatNumber(int64(n)) + " expenses"
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
