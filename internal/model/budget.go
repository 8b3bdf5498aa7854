// Package model defines the plain data types shared by the budget core and the
// presentation layers.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultGoalName replaces a blank goal name.
	DefaultGoalName = "Dream Trip"
	// DefaultGoalMonths is the goal horizon a new session starts with.
	DefaultGoalMonths = 12
	// MinGoalMonths is the smallest accepted goal horizon.
	MinGoalMonths = 1
)

var (
	// DefaultSavingsRate is the savings percentage a new session starts with.
	DefaultSavingsRate = decimal.NewFromInt(35)
	// MaxSavingsRate is the upper bound of the savings percentage.
	MaxSavingsRate = decimal.NewFromInt(100)
)

// Goal is a named savings target with a horizon in months.
type Goal struct {
	Name           string
	DurationMonths int
}

// Expense is a single ledger entry.
type Expense struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Figures holds the values derived from a budget state.
type Figures struct {
	Income              decimal.Decimal
	SavingsRatePercent  decimal.Decimal
	SpendingRatePercent decimal.Decimal
	SavingsFraction     decimal.Decimal

	MonthlySavings   decimal.Decimal
	SpendingBudget   decimal.Decimal
	TotalExpenses    decimal.Decimal
	RemainingBudget  decimal.Decimal
	ProjectedSavings decimal.Decimal

	DurationMonths    int
	ExpenseCount      int
	BudgetUsedPercent float64 // TotalExpenses / SpendingBudget, 0 when the budget is 0
}

// SchedulePoint is the cumulative savings at the end of a month of the goal.
type SchedulePoint struct {
	Month int
	Saved decimal.Decimal
}

// Overspent reports whether expenses exceed the spending budget.
func (f Figures) Overspent() bool {
	return f.RemainingBudget.IsNegative()
}
