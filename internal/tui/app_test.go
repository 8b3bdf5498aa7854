package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/saveup/internal/budget"
	"github.com/theirongolddev/saveup/internal/config"
	"github.com/theirongolddev/saveup/internal/model"
	"github.com/theirongolddev/saveup/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s := budget.New(
		budget.WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
		budget.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("exp-%d", n)
		}),
	)
	a := NewApp(Options{State: s, Currency: "USD"})
	return update(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	require.True(t, ok, "Update returned %T", m)
	return next
}

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		a = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

func press(t *testing.T, a App, k tea.KeyType, times int) App {
	t.Helper()
	for i := 0; i < times; i++ {
		a = update(t, a, tea.KeyMsg{Type: k})
	}
	return a
}

func focusField(t *testing.T, a App, f field) App {
	t.Helper()
	for a.focus != f {
		a = press(t, a, tea.KeyTab, 1)
	}
	return a
}

func addExpense(t *testing.T, a App, name, amount string) App {
	t.Helper()
	a = focusField(t, a, fieldExpenseName)
	a = typeText(t, a, name)
	a = press(t, a, tea.KeyTab, 1)
	a = typeText(t, a, amount)
	return press(t, a, tea.KeyEnter, 1)
}

func TestIncomeUpdatesFigures(t *testing.T) {
	a := typeText(t, newTestApp(t), "5000")

	assert.Equal(t, "5000", a.state.Income().String())
	assert.Equal(t, "1750", a.figures.MonthlySavings.String())
	assert.Equal(t, "3250", a.figures.SpendingBudget.String())
}

func TestRejectedRateRestoresField(t *testing.T) {
	a := focusField(t, newTestApp(t), fieldRate)
	require.Equal(t, "35", a.inputs[fieldRate].Value())

	// an empty field is accepted and keeps the last rate
	a = press(t, a, tea.KeyBackspace, 2)
	assert.Equal(t, "", a.inputs[fieldRate].Value())
	assert.Equal(t, "3", a.state.SavingsRate().String())

	a = typeText(t, a, "15")
	assert.Equal(t, "15", a.state.SavingsRate().String())

	a = typeText(t, a, "0")
	assert.Equal(t, "15", a.inputs[fieldRate].Value(), "150 should be reverted")
	assert.Equal(t, "15", a.state.SavingsRate().String())
}

func TestGoalFieldsNormalize(t *testing.T) {
	a := focusField(t, newTestApp(t), fieldGoalName)
	a = press(t, a, tea.KeyBackspace, len("Dream Trip"))
	assert.Equal(t, "Dream Trip", a.state.Goal().Name)

	a = typeText(t, a, "Japan")
	assert.Equal(t, "Japan", a.state.Goal().Name)

	a = focusField(t, a, fieldGoalMonths)
	a = press(t, a, tea.KeyBackspace, 2)
	assert.Equal(t, 1, a.state.Goal().DurationMonths)
	a = typeText(t, a, "6")
	assert.Equal(t, 6, a.figures.DurationMonths)
}

func TestSeededValuesAreNotTruncated(t *testing.T) {
	s := budget.New(budget.WithGoal("House", 24000)).SetIncome("12345678901234567890.55")
	a := NewApp(Options{State: s, Currency: "USD"})

	assert.Equal(t, "24000", a.inputs[fieldGoalMonths].Value())
	assert.Equal(t, "12345678901234567890.55", a.inputs[fieldIncome].Value())

	a = focusField(t, a, fieldGoalName)
	a = typeText(t, a, "s")
	assert.Equal(t, model.Goal{Name: "Houses", DurationMonths: 24000}, a.state.Goal())
	assert.Equal(t, "12345678901234567890.55", a.state.Income().String())
}

func TestGoalNameEditKeepsDuration(t *testing.T) {
	a := focusField(t, newTestApp(t), fieldGoalMonths)
	a = press(t, a, tea.KeyBackspace, 2)
	a = typeText(t, a, "36")

	a = focusField(t, a, fieldGoalName)
	a = typeText(t, a, "!")
	assert.Equal(t, 36, a.state.Goal().DurationMonths)
	assert.Equal(t, "Dream Trip!", a.state.Goal().Name)
}

func TestViewLongHorizon(t *testing.T) {
	s := budget.New(budget.WithGoal("Retire", 2000000000)).SetIncome("5000")
	a := NewApp(Options{State: s, Currency: "USD"})
	a = update(t, a, tea.WindowSizeMsg{Width: 140, Height: 50})

	view := a.View()
	assert.Contains(t, view, "Projected Savings for Retire")
	assert.Contains(t, view, "2000000000")
}

func TestAddExpense(t *testing.T) {
	a := typeText(t, newTestApp(t), "5000")
	a = addExpense(t, a, "Groceries", "600")
	a = addExpense(t, a, "Rent", "1500")

	require.Equal(t, 2, a.state.Len())
	assert.Equal(t, "Rent", a.state.Expenses()[0].Name)
	assert.Equal(t, "2100", a.figures.TotalExpenses.String())
	assert.Equal(t, "1150", a.figures.RemainingBudget.String())

	assert.Empty(t, a.inputs[fieldExpenseName].Value())
	assert.Empty(t, a.inputs[fieldExpenseAmount].Value())
	assert.Equal(t, fieldExpenseName, a.focus)
	assert.False(t, a.noticeWarn)
	assert.Contains(t, a.notice, "Rent")
}

func TestAddExpense_InvalidKeepsInputs(t *testing.T) {
	a := addExpense(t, newTestApp(t), "Coffee", "0")

	assert.Equal(t, 0, a.state.Len())
	assert.True(t, a.noticeWarn)
	assert.Equal(t, "Coffee", a.inputs[fieldExpenseName].Value())
	assert.Equal(t, "0", a.inputs[fieldExpenseAmount].Value())
}

func TestDeleteSelectedExpense(t *testing.T) {
	a := addExpense(t, newTestApp(t), "Groceries", "600")
	a = addExpense(t, a, "Rent", "1500")
	a = focusField(t, a, fieldList)

	a = typeText(t, a, "j")
	assert.Equal(t, 1, a.list.cursor)

	a = typeText(t, a, "d")
	require.Equal(t, 1, a.state.Len())
	assert.Equal(t, "Rent", a.state.Expenses()[0].Name)
	assert.Equal(t, 0, a.list.cursor, "cursor is clamped after delete")

	a = press(t, a, tea.KeyDelete, 1)
	assert.Equal(t, 0, a.state.Len())

	// deleting from an empty list is a no-op
	a = typeText(t, a, "d")
	assert.Equal(t, 0, a.state.Len())
}

func TestSearchFiltersList(t *testing.T) {
	a := addExpense(t, newTestApp(t), "Groceries", "600")
	a = addExpense(t, a, "Rent", "1500")
	a = focusField(t, a, fieldList)

	a = typeText(t, a, "/")
	require.True(t, a.list.searching)
	a = typeText(t, a, "REN")
	require.Len(t, a.list.visible, 1)
	assert.Equal(t, "Rent", a.list.visible[0].Name)

	a = press(t, a, tea.KeyEnter, 1)
	assert.False(t, a.list.searching)
	assert.Equal(t, "REN", a.list.query)

	// delete acts on the filtered selection
	a = typeText(t, a, "d")
	require.Equal(t, 1, a.state.Len())
	assert.Equal(t, "Groceries", a.state.Expenses()[0].Name)

	a = press(t, a, tea.KeyEsc, 1)
	assert.Empty(t, a.list.query)
	assert.Len(t, a.list.visible, 1)
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// q is text while an input has focus
	a = typeText(t, focusField(t, a, fieldExpenseName), "q")
	assert.Equal(t, "q", a.inputs[fieldExpenseName].Value())

	a = focusField(t, a, fieldList)
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	a := focusField(t, newTestApp(t), fieldList)

	a = typeText(t, a, "?")
	require.True(t, a.showHelp)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")

	a = typeText(t, a, "x")
	assert.False(t, a.showHelp)
}

func TestShiftTabWrapsAround(t *testing.T) {
	a := press(t, newTestApp(t), tea.KeyShiftTab, 1)
	assert.Equal(t, fieldList, a.focus)
	assert.False(t, a.inputs[fieldIncome].Focused())
}

func TestMouseWheelMovesSelection(t *testing.T) {
	a := addExpense(t, newTestApp(t), "Groceries", "600")
	a = addExpense(t, a, "Rent", "1500")

	a = update(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, a.list.cursor)
	a = update(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, a.list.cursor, "cursor stops at the last expense")
	a = update(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, a.list.cursor)
}

func TestView(t *testing.T) {
	a := typeText(t, newTestApp(t), "5000")
	a = addExpense(t, a, "Groceries", "600")

	for _, width := range []int{100, 140} {
		a = update(t, a, tea.WindowSizeMsg{Width: width, Height: 50})
		view := a.View()
		assert.Contains(t, view, "Monthly Income")
		assert.Contains(t, view, "$5,000.00")
		assert.Contains(t, view, "Groceries")
		assert.Contains(t, view, "Remaining Budget")
		assert.Contains(t, view, "Projected Savings for Dream Trip")
	}

	a = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, a.View(), "Terminal too narrow")
}

func TestViewOverspent(t *testing.T) {
	a := typeText(t, newTestApp(t), "1000")
	a = addExpense(t, a, "Rent", "1500")

	require.True(t, a.figures.Overspent())
	assert.Contains(t, a.View(), "Over budget by $850.00")
}

func TestFinishSetup(t *testing.T) {
	config.SetPath(filepath.Join(t.TempDir(), "config.toml"))
	t.Cleanup(func() {
		config.SetPath("")
		theme.SetActive(theme.FlexokiDark.Name)
	})

	t.Setenv("SAVEUP_CURRENCY", "")

	a := NewApp(Options{State: budget.New(), Currency: "USD", NeedSetup: true})
	require.NotNil(t, a.setupForm)

	a.setupVals.SavingsRate = "20"
	a.setupVals.GoalName = "Japan"
	a.setupVals.GoalMonths = "6"
	a.setupVals.Currency = "EUR"
	a.setupVals.Theme = "tokyo-night"
	a.finishSetup()

	assert.False(t, a.needSetup)
	assert.Nil(t, a.setupForm)
	assert.Equal(t, "20", a.state.SavingsRate().String())
	assert.Equal(t, "Japan", a.state.Goal().Name)
	assert.Equal(t, "20", a.inputs[fieldRate].Value())
	assert.Equal(t, "6", a.inputs[fieldGoalMonths].Value())
	assert.Equal(t, "EUR", a.currency)
	assert.Equal(t, "tokyo-night", theme.Active.Name)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Budget.SavingsRate)
	assert.Equal(t, "Japan", cfg.Budget.GoalName)
	assert.Equal(t, 6, cfg.Budget.GoalMonths)
	assert.Equal(t, "EUR", cfg.Budget.Currency)
}

func TestSetupValuesApply(t *testing.T) {
	t.Setenv("SAVEUP_CURRENCY", "")
	cfg := config.DefaultConfig()
	SetupValues{SavingsRate: " ", GoalName: "  ", GoalMonths: "0"}.Apply(&cfg)

	assert.Equal(t, config.DefaultConfig(), cfg, "blank or invalid answers keep the defaults")

	for _, rate := range []string{"NaN", "Inf", "150"} {
		cfg := config.DefaultConfig()
		SetupValues{SavingsRate: rate}.Apply(&cfg)
		assert.Equal(t, 35.0, cfg.Budget.SavingsRate, rate)
		assert.NoError(t, cfg.Validate(), rate)
	}
}

func TestSetupValidation(t *testing.T) {
	assert.NoError(t, validateSetupRate(""))
	assert.NoError(t, validateSetupRate("42.5"))
	assert.Error(t, validateSetupRate("101"))
	assert.Error(t, validateSetupRate("abc"))

	assert.NoError(t, validateSetupMonths("12"))
	assert.Error(t, validateSetupMonths("0"))
	assert.Error(t, validateSetupMonths("1.5"))
}

func TestTruncStr(t *testing.T) {
	assert.Equal(t, "Groc…", truncStr("Groceries", 5))
	assert.Equal(t, "Rent", truncStr("Rent", 5))
	assert.Equal(t, "", truncStr("Rent", 0))
	assert.True(t, strings.HasSuffix(truncStr("Überweisung", 4), "…"))
}

func TestLedgerChangesAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	a := NewApp(Options{State: budget.New(), Currency: "USD", Logger: zap.New(core)})
	a = addExpense(t, a, "Rent", "1500")
	a = addExpense(t, a, "", "10")
	a = focusField(t, a, fieldList)
	_ = typeText(t, a, "d")

	var msgs []string
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"expense added", "expense rejected", "expense deleted"}, msgs)

	added := logs.FilterMessage("expense added").All()[0].ContextMap()
	assert.Equal(t, "Rent", added["name"])
	assert.Equal(t, "1500", added["amount"])
}
