package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/saveup/internal/model"
)

// AddExpense records a new expense stamped with the current time and returns
// the updated state together with the created entry.
//
// The name is trimmed; an empty name, an unparsable amount or an amount <= 0
// fail with an error wrapping ErrInvalidExpense and the ledger is unchanged.
func (s State) AddExpense(name, amountRaw string) (State, model.Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, model.Expense{}, fmt.Errorf("%w: name is empty", ErrInvalidExpense)
	}
	amount, ok := parseDecimal(amountRaw)
	if !ok {
		return s, model.Expense{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidExpense, amountRaw)
	}
	if !amount.IsPositive() {
		return s, model.Expense{}, fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}

	e := model.Expense{
		ID:        s.newID(),
		Name:      name,
		Amount:    amount,
		CreatedAt: s.now(),
	}

	expenses := make([]model.Expense, 0, len(s.expenses)+1)
	expenses = append(expenses, e)
	expenses = append(expenses, s.expenses...)
	sortNewestFirst(expenses)

	s.expenses = expenses
	return s, e, nil
}

// DeleteExpense removes the expense with the given id. It reports whether an
// entry was removed; an unknown id leaves the ledger as it is.
func (s State) DeleteExpense(id string) (State, bool) {
	idx := -1
	for i, e := range s.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, false
	}

	expenses := make([]model.Expense, 0, len(s.expenses)-1)
	expenses = append(expenses, s.expenses[:idx]...)
	expenses = append(expenses, s.expenses[idx+1:]...)

	s.expenses = expenses
	return s, true
}

// sortNewestFirst orders by creation time, newest first. The sort is stable so
// an entry prepended with the same timestamp as its neighbour stays in front.
func sortNewestFirst(expenses []model.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
}
