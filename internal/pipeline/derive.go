// Package pipeline derives budget figures from a session state.
package pipeline

import (
	"math"

	"github.com/theirongolddev/saveup/internal/budget"
	"github.com/theirongolddev/saveup/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Derive computes the figures for the given state. It is pure and cheap, so
// callers recompute after every mutation instead of caching.
func Derive(s budget.State) model.Figures {
	rate := s.SavingsRate()
	income := s.Income()
	months := s.Goal().DurationMonths
	expenses := s.Expenses()

	fraction := rate.Div(hundred)

	f := model.Figures{
		Income:              income,
		SavingsRatePercent:  rate,
		SpendingRatePercent: hundred.Sub(rate),
		SavingsFraction:     fraction,
		MonthlySavings:      income.Mul(fraction),
		SpendingBudget:      income.Mul(decimal.NewFromInt(1).Sub(fraction)),
		TotalExpenses:       TotalExpenses(expenses),
		DurationMonths:      months,
		ExpenseCount:        len(expenses),
	}
	f.RemainingBudget = f.SpendingBudget.Sub(f.TotalExpenses)
	f.ProjectedSavings = f.MonthlySavings.Mul(decimal.NewFromInt(int64(months)))

	if f.SpendingBudget.IsPositive() {
		f.BudgetUsedPercent = f.TotalExpenses.Div(f.SpendingBudget).InexactFloat64()
	}

	return f
}

// TotalExpenses sums the amounts of the given expenses.
func TotalExpenses(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// SavingsSchedule returns the cumulative savings at the end of at most
// maxPoints months of the goal horizon. Longer horizons are sampled evenly;
// the first and last months are always included and the last point equals
// ProjectedSavings.
func SavingsSchedule(f model.Figures, maxPoints int) []model.SchedulePoint {
	months := f.DurationMonths
	if months < 1 || maxPoints < 1 {
		return nil
	}
	if maxPoints == 1 {
		return []model.SchedulePoint{schedulePoint(f, months)}
	}

	n := min(months, maxPoints)
	points := make([]model.SchedulePoint, n)
	for i := range points {
		month := i + 1
		if months > n {
			month = 1 + int(math.Round(float64(i)*float64(months-1)/float64(n-1)))
		}
		points[i] = schedulePoint(f, month)
	}
	points[n-1] = schedulePoint(f, months)
	return points
}

func schedulePoint(f model.Figures, month int) model.SchedulePoint {
	return model.SchedulePoint{
		Month: month,
		Saved: f.MonthlySavings.Mul(decimal.NewFromInt(int64(month))),
	}
}
