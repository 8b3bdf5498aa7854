// Package budget holds the budget state of a planning session and the
// operations that mutate it.
//
// State is a value: every operation returns the updated State and leaves the
// receiver untouched, so callers own exactly one current state and decide when
// to replace it.
package budget

import (
	"time"

	"github.com/theirongolddev/saveup/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// State is the full set of user-entered inputs for one session.
type State struct {
	income      decimal.Decimal
	savingsRate decimal.Decimal
	goal        model.Goal
	expenses    []model.Expense

	now   func() time.Time
	newID func() string
}

// Option configures a new State.
type Option func(*State)

// WithClock sets the time source used to stamp new expenses.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the function used to assign expense ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *State) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithSavingsRate sets the starting savings percentage. Values outside
// [0,100] are ignored.
func WithSavingsRate(rate decimal.Decimal) Option {
	return func(s *State) {
		if validRate(rate) {
			s.savingsRate = rate
		}
	}
}

// WithGoal sets the starting goal, normalized like SetGoal.
func WithGoal(name string, months int) Option {
	return func(s *State) {
		s.goal = normalizeGoal(name, months, true)
	}
}

// New returns a session state with the defaults: no income, a 35% savings
// rate, a 12 month "Dream Trip" goal and an empty ledger.
func New(opts ...Option) State {
	s := State{
		income:      decimal.Zero,
		savingsRate: model.DefaultSavingsRate,
		goal: model.Goal{
			Name:           model.DefaultGoalName,
			DurationMonths: model.DefaultGoalMonths,
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Income returns the monthly income.
func (s State) Income() decimal.Decimal { return s.income }

// SavingsRate returns the savings percentage in [0,100].
func (s State) SavingsRate() decimal.Decimal { return s.savingsRate }

// Goal returns the savings goal.
func (s State) Goal() model.Goal { return s.goal }

// Len returns the number of expenses in the ledger.
func (s State) Len() int { return len(s.expenses) }

// Expenses returns a copy of the ledger, newest first.
func (s State) Expenses() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Expense looks up an expense by id.
func (s State) Expense(id string) (model.Expense, bool) {
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}
