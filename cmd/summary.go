package cmd

import (
	"fmt"

	"github.com/theirongolddev/saveup/internal/cli"
	"github.com/theirongolddev/saveup/internal/model"
	"github.com/theirongolddev/saveup/internal/pipeline"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// sparklinePoints is the most months the savings sparkline draws.
const sparklinePoints = 36

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the budget figures and expense ledger",
	Example: `  saveup summary --income 5000 --rate 35
  saveup summary -i 5000 -e Groceries=600 -e Rent=1500 --goal Japan --months 6`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	sess, err := loadSession(false)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Log.Sync() }()

	f := pipeline.Derive(sess.State)
	goal := sess.State.Goal()
	money := func(m decimal.Decimal) string { return cli.FormatCurrency(m, sess.Currency) }

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", goal.Name)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Allocation",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Monthly Income", money(f.Income)},
			{fmt.Sprintf("Monthly Savings (%s)", cli.FormatRate(f.SavingsRatePercent)), money(f.MonthlySavings)},
			{fmt.Sprintf("Available Spending (%s)", cli.FormatRate(f.SpendingRatePercent)), money(f.SpendingBudget)},
			{"---"},
			{"Total Expenses", money(f.TotalExpenses)},
			{"Remaining Budget", money(f.RemainingBudget)},
		},
	}))
	fmt.Println()

	expenses := sess.State.Expenses()
	if len(expenses) == 0 {
		fmt.Println("  " + cli.RenderMuted("No expenses added yet."))
	} else {
		fmt.Print(cli.RenderTable(expenseTable(expenses, sess.Currency, f)))
	}
	fmt.Println()

	fmt.Printf("  Budget used  %s\n", cli.RenderUsageBar(f.BudgetUsedPercent, 30))
	if f.Overspent() {
		fmt.Println(cli.RenderNotice("Over budget by "+money(f.RemainingBudget.Abs()), true))
	}
	fmt.Println()

	schedule := pipeline.SavingsSchedule(f, sparklinePoints)
	values := make([]float64, len(schedule))
	for i, p := range schedule {
		values[i] = p.Saved.InexactFloat64()
	}
	fmt.Printf("  Projected Savings for %s (%s): %s\n",
		goal.Name, cli.FormatMonths(f.DurationMonths), money(f.ProjectedSavings))
	if f.MonthlySavings.IsPositive() {
		fmt.Printf("  %s\n", cli.RenderSparkline(values))
	}
	fmt.Println()

	return nil
}

func expenseTable(expenses []model.Expense, currency string, f model.Figures) cli.Table {
	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{e.Name, cli.FormatCurrency(e.Amount, currency), e.CreatedAt.Format("2006-01-02 15:04")})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatCurrency(f.TotalExpenses, currency), ""})

	return cli.Table{
		Title:   fmt.Sprintf("Expenses (%d)", len(expenses)),
		Headers: []string{"Expense", "Amount", "Added"},
		Rows:    rows,
	}
}
