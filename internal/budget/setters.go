package budget

import (
	"strings"

	"github.com/theirongolddev/saveup/internal/model"

	"github.com/shopspring/decimal"
)

// SetIncome parses raw as the monthly income. Empty, non-numeric and negative
// input all become 0.
func (s State) SetIncome(raw string) State {
	income, ok := parseDecimal(raw)
	if !ok || income.IsNegative() {
		income = decimal.Zero
	}
	s.income = income
	return s
}

// SetSavingsRate parses raw as the savings percentage.
//
// An empty input is the transient state of a field being edited: it is
// accepted and the current rate is kept. Anything that does not parse to a
// value in [0,100] returns ErrInvalidRate together with the unchanged state.
func (s State) SetSavingsRate(raw string) (State, error) {
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}
	rate, ok := parseDecimal(raw)
	if !ok || !validRate(rate) {
		return s, ErrInvalidRate
	}
	s.savingsRate = rate
	return s, nil
}

// SetGoal replaces the goal. A blank name becomes "Dream Trip" and a missing,
// invalid or too small duration becomes 1 month. It never rejects.
func (s State) SetGoal(name, durationRaw string) State {
	months, ok := parseLeadingInt(durationRaw)
	s.goal = normalizeGoal(name, months, ok)
	return s
}

func normalizeGoal(name string, months int, ok bool) model.Goal {
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultGoalName
	}
	if !ok || months < model.MinGoalMonths {
		months = model.MinGoalMonths
	}
	return model.Goal{Name: name, DurationMonths: months}
}

func validRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(model.MaxSavingsRate)
}
