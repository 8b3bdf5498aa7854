package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/saveup/internal/budget"
	"github.com/theirongolddev/saveup/internal/cli"
	"github.com/theirongolddev/saveup/internal/logger"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// field identifies a focusable part of the planner, in tab order.
type field int

const (
	fieldIncome field = iota
	fieldRate
	fieldGoalName
	fieldGoalMonths
	fieldExpenseName
	fieldExpenseAmount
	fieldList
	fieldCount // sentinel
)

var fieldLabels = [fieldList]string{
	fieldIncome:        "Monthly Income",
	fieldRate:          "Savings Rate (%)",
	fieldGoalName:      "Goal",
	fieldGoalMonths:    "Duration (months)",
	fieldExpenseName:   "Expense",
	fieldExpenseAmount: "Amount",
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 24
	return ti
}

// setInputValue shows v in ti, raising the character limit when v is longer
// so seeded values are never cut.
func setInputValue(ti *textinput.Model, v string) {
	if n := len([]rune(v)); ti.CharLimit > 0 && n > ti.CharLimit {
		ti.CharLimit = n
	}
	ti.SetValue(v)
}

// newInputs builds the input fields showing the values of s.
func newInputs(s budget.State) [fieldList]textinput.Model {
	var in [fieldList]textinput.Model

	in[fieldIncome] = newInput("0.00", 16)
	if s.Income().IsPositive() {
		setInputValue(&in[fieldIncome], s.Income().String())
	}

	in[fieldRate] = newInput("35", 6)
	setInputValue(&in[fieldRate], s.SavingsRate().String())

	goal := s.Goal()
	in[fieldGoalName] = newInput("Dream Trip", 48)
	setInputValue(&in[fieldGoalName], goal.Name)
	in[fieldGoalMonths] = newInput("12", 4)
	setInputValue(&in[fieldGoalMonths], strconv.Itoa(goal.DurationMonths))

	in[fieldExpenseName] = newInput("e.g. Groceries", 48)
	in[fieldExpenseAmount] = newInput("0.00", 16)

	return in
}

// setFocus moves keyboard focus to f, blurring every other input.
func (a *App) setFocus(f field) tea.Cmd {
	a.focus = f
	var cmd tea.Cmd
	for i := range a.inputs {
		if field(i) == f {
			cmd = a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
	return cmd
}

// updateInput forwards a key to the focused input and applies the edited
// value to the session.
func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		switch a.focus {
		case fieldExpenseName, fieldExpenseAmount:
			return a.addExpense()
		default:
			cmd := a.setFocus(a.focus + 1)
			return a, cmd
		}
	}

	f := a.focus
	prev := a.inputs[f].Value()

	var cmd tea.Cmd
	a.inputs[f], cmd = a.inputs[f].Update(msg)

	if a.inputs[f].Value() != prev {
		a.applyField(f, prev)
	}
	return a, cmd
}

// applyField pushes the text of f into the session. A rejected savings rate
// restores prev in the field.
func (a *App) applyField(f field, prev string) {
	v := a.inputs[f].Value()

	switch f {
	case fieldIncome:
		a.state = a.state.SetIncome(v)
	case fieldRate:
		next, err := a.state.SetSavingsRate(v)
		if errors.Is(err, budget.ErrInvalidRate) {
			a.log.Debug("savings rate rejected", zap.String("input", v))
			a.inputs[f].SetValue(prev)
			return
		}
		a.state = next
	case fieldGoalName:
		months := strconv.Itoa(a.state.Goal().DurationMonths)
		a.state = a.state.SetGoal(v, months)
	case fieldGoalMonths:
		a.state = a.state.SetGoal(a.inputs[fieldGoalName].Value(), v)
	default:
		return
	}
	a.recompute()
}

func (a App) addExpense() (tea.Model, tea.Cmd) {
	name := a.inputs[fieldExpenseName].Value()
	amount := a.inputs[fieldExpenseAmount].Value()

	next, e, err := a.state.AddExpense(name, amount)
	if err != nil {
		a.log.Debug("expense rejected", zap.Error(err))
		a.setNotice("Enter a name and an amount greater than zero", true)
		return a, nil
	}

	a.state = next
	a.log.Debug("expense added", logger.Expense(e.ID, e.Name, e.Amount.String())...)
	a.setNotice(fmt.Sprintf("Added %s (%s)", e.Name, cli.FormatCurrency(e.Amount, a.currency)), false)

	a.inputs[fieldExpenseName].Reset()
	a.inputs[fieldExpenseAmount].Reset()
	a.recompute()
	cmd := a.setFocus(fieldExpenseName)
	return a, cmd
}

// syncInputs rewrites the budget fields after the session changed outside of
// the inputs. The expense form keeps its pending text.
func (a *App) syncInputs() {
	fresh := newInputs(a.state)
	for _, f := range []field{fieldIncome, fieldRate, fieldGoalName, fieldGoalMonths} {
		setInputValue(&a.inputs[f], fresh[f].Value())
	}
}
