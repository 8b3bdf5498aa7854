// Package report renders a budget session as a markdown document, optionally
// styled for the terminal with glamour.
package report

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/theirongolddev/saveup/internal/budget"
	"github.com/theirongolddev/saveup/internal/cli"
	"github.com/theirongolddev/saveup/internal/model"
	"github.com/theirongolddev/saveup/internal/pipeline"

	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
)

//go:embed budget.md.tmpl
var budgetTemplate string

// scheduleRows is the most months listed in the savings table.
const scheduleRows = 24

// Report is the data behind the markdown document.
type Report struct {
	Goal        model.Goal
	Figures     model.Figures
	Expenses    []model.Expense
	Schedule    []model.SchedulePoint
	Currency    string
	GeneratedAt time.Time
}

// Sampled reports whether the schedule lists fewer months than the goal has.
func (r Report) Sampled() bool {
	return len(r.Schedule) < r.Figures.DurationMonths
}

// New snapshots a session state for rendering.
func New(s budget.State, currency string, now time.Time) Report {
	f := pipeline.Derive(s)
	return Report{
		Goal:        s.Goal(),
		Figures:     f,
		Expenses:    s.Expenses(),
		Schedule:    pipeline.SavingsSchedule(f, scheduleRows),
		Currency:    currency,
		GeneratedAt: now,
	}
}

// Markdown renders the report as plain markdown.
func (r Report) Markdown() (string, error) {
	funcs := template.FuncMap{
		"money":   func(d decimal.Decimal) string { return cli.FormatCurrency(d, r.Currency) },
		"rate":    cli.FormatRate,
		"percent": cli.FormatPercent,
		"months":  cli.FormatMonths,
		"cell":    escapeCell,
	}

	tmpl, err := template.New("budget").Funcs(funcs).Parse(budgetTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing report template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return "", fmt.Errorf("executing report template: %w", err)
	}
	return b.String(), nil
}

// escapeCell keeps user text from breaking a markdown table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.Join(strings.Fields(s), " ")
}

// Render renders the report for the terminal. An empty style picks one from
// the terminal background.
func (r Report) Render(style string, width int) (string, error) {
	md, err := r.Markdown()
	if err != nil {
		return "", err
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return out, nil
}
