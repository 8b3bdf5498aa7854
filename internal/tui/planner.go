package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/saveup/internal/cli"
	"github.com/theirongolddev/saveup/internal/pipeline"
	"github.com/theirongolddev/saveup/internal/tui/components"
	"github.com/theirongolddev/saveup/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// renderPlanner lays out the whole page in cw columns, sizing the expense
// list and the savings chart to fit h rows where possible.
func (a App) renderPlanner(cw, h int) string {
	metrics := a.renderMetrics(cw)

	if a.isWideLayout() {
		halves := components.LayoutRow(cw, 2)
		bodyH := h - lipgloss.Height(metrics)

		inputs := a.renderBudgetInputs(halves[0])
		form := a.renderExpenseForm(halves[0])
		listRows := bodyH - lipgloss.Height(inputs) - lipgloss.Height(form) - 6
		left := lipgloss.JoinVertical(lipgloss.Left, inputs, form, a.renderExpenseCard(halves[0], listRows))

		remaining := a.renderRemaining(halves[1])
		chartH := min(bodyH-lipgloss.Height(remaining)-6, 12)
		right := lipgloss.JoinVertical(lipgloss.Left, remaining, a.renderProjected(halves[1], chartH))

		return metrics + "\n" + components.CardRow([]string{left, right})
	}

	halves := components.LayoutRow(cw, 2)
	top := components.CardRow([]string{a.renderBudgetInputs(halves[0]), a.renderExpenseForm(halves[1])})
	bottom := components.CardRow([]string{a.renderRemaining(halves[0]), a.renderProjected(halves[1], 4)})
	listRows := h - lipgloss.Height(metrics) - lipgloss.Height(top) - lipgloss.Height(bottom) - 4

	var b strings.Builder
	b.WriteString(metrics)
	b.WriteString("\n")
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(a.renderExpenseCard(cw, listRows))
	b.WriteString("\n")
	b.WriteString(bottom)
	return b.String()
}

func (a App) renderMetrics(cw int) string {
	t := theme.Active
	f := a.figures

	savingsLabel := fmt.Sprintf("Monthly Savings (%s)", cli.FormatRate(f.SavingsRatePercent))
	spendingLabel := fmt.Sprintf("Available Spending (%s)", cli.FormatRate(f.SpendingRatePercent))
	if !a.isWideLayout() {
		savingsLabel = fmt.Sprintf("Savings (%s)", cli.FormatRate(f.SavingsRatePercent))
		spendingLabel = fmt.Sprintf("Spending (%s)", cli.FormatRate(f.SpendingRatePercent))
	}

	return components.MetricCardRow([]components.Metric{
		{Label: "Monthly Income", Value: a.money(f.Income)},
		{Label: savingsLabel, Value: a.money(f.MonthlySavings), Color: t.Magenta},
		{Label: spendingLabel, Value: a.money(f.SpendingBudget), Color: t.Accent},
	}, cw)
}

func (a App) renderBudgetInputs(w int) string {
	body := a.renderInputRows(w, fieldIncome, fieldRate, fieldGoalName, fieldGoalMonths)
	if a.focus <= fieldGoalMonths {
		return components.FocusedCard("Income & Savings Goal", body, w)
	}
	return components.ContentCard("Income & Savings Goal", body, w)
}

func (a App) renderExpenseForm(w int) string {
	body := a.renderInputRows(w, fieldExpenseName, fieldExpenseAmount)
	if a.notice != "" {
		body += "\n" + a.renderNotice(components.CardInnerWidth(w))
	}
	if a.focus == fieldExpenseName || a.focus == fieldExpenseAmount {
		return components.FocusedCard("Add Expense", body, w)
	}
	return components.ContentCard("Add Expense", body, w)
}

func (a App) renderNotice(w int) string {
	t := theme.Active
	color := t.Green
	if a.noticeWarn {
		color = t.Red
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Background(t.Surface).
		Render(truncStr(a.notice, w))
}

// renderInputRows renders one "label  value" row per field.
func (a App) renderInputRows(w int, fields ...field) string {
	t := theme.Active
	labelW := 0
	for _, f := range fields {
		labelW = max(labelW, lipgloss.Width(fieldLabels[f]))
	}
	inputW := components.CardInnerWidth(w) - labelW - 5 // marker, gap and cursor
	if inputW < 6 {
		inputW = 6
	}

	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		marker := "  "
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		if f == a.focus {
			marker = "▸ "
			labelStyle = labelStyle.Foreground(t.Accent).Bold(true)
		}

		in := a.inputs[f]
		in.Width = inputW
		rows = append(rows,
			labelStyle.Render(marker+fmt.Sprintf("%-*s", labelW, fieldLabels[f]))+
				labelStyle.Render("  ")+
				in.View())
	}
	return strings.Join(rows, "\n")
}

func (a App) renderExpenseCard(w, maxRows int) string {
	title := fmt.Sprintf("Expenses (%d)", a.state.Len())
	body := a.renderExpenseList(components.CardInnerWidth(w), maxRows)
	if a.focus == fieldList {
		return components.FocusedCard(title, body, w)
	}
	return components.ContentCard(title, body, w)
}

func (a App) renderRemaining(w int) string {
	t := theme.Active
	f := a.figures
	inner := components.CardInnerWidth(w)

	valueStyle := lipgloss.NewStyle().
		Foreground(t.Remaining(f.Overspent())).
		Background(t.Surface).
		Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(valueStyle.Render(a.money(f.RemainingBudget)))
	b.WriteString("\n")
	if f.Overspent() {
		b.WriteString(valueStyle.Render("Over budget by " + a.money(f.RemainingBudget.Abs())))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("left of %s to spend", a.money(f.SpendingBudget))))
	}
	b.WriteString("\n")
	b.WriteString(components.BudgetBar("Used", f.BudgetUsedPercent, inner))

	return components.ContentCard("Remaining Budget", b.String(), w)
}

func (a App) renderProjected(w, chartH int) string {
	t := theme.Active
	f := a.figures
	goal := a.state.Goal()

	title := fmt.Sprintf("Projected Savings for %s (%s)", goal.Name, cli.FormatMonths(f.DurationMonths))
	title = truncStr(title, components.CardInnerWidth(w))

	valueStyle := lipgloss.NewStyle().
		Foreground(t.Magenta).
		Background(t.Surface).
		Bold(true)

	body := valueStyle.Render(a.money(f.ProjectedSavings))
	if f.MonthlySavings.IsPositive() {
		innerW := components.CardInnerWidth(w)
		schedule := pipeline.SavingsSchedule(f, innerW/2)
		months := make([]int, len(schedule))
		values := make([]float64, len(schedule))
		for i, p := range schedule {
			months[i] = p.Month
			values[i] = p.Saved.InexactFloat64()
		}
		body += "\n" + components.ScheduleChart(months, values, t.Magenta, innerW, chartH)
	}
	return components.ContentCard(title, body, w)
}

func (a App) money(d decimal.Decimal) string {
	return cli.FormatCurrency(d, a.currency)
}
