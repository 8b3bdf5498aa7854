package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/saveup/internal/budget"
	"github.com/theirongolddev/saveup/internal/config"
	"github.com/theirongolddev/saveup/internal/model"
	"github.com/theirongolddev/saveup/internal/tui/theme"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// SetupValues holds the answers of the first-run form as entered.
type SetupValues struct {
	SavingsRate string
	GoalName    string
	GoalMonths  string
	Currency    string
	Theme       string
}

var setupCurrencies = []string{
	money.USD, money.EUR, money.GBP, money.JPY, money.CAD, money.AUD, money.CHF, money.INR,
}

// NewSetupValues pre-fills the form from cfg.
func NewSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		SavingsRate: strconv.FormatFloat(cfg.Budget.SavingsRate, 'f', -1, 64),
		GoalName:    cfg.Budget.GoalName,
		GoalMonths:  strconv.Itoa(cfg.Budget.GoalMonths),
		Currency:    config.GetCurrency(cfg),
		Theme:       cfg.Appearance.Theme,
	}
}

func newSetupValues(s budget.State, currency string) SetupValues {
	goal := s.Goal()
	return SetupValues{
		SavingsRate: s.SavingsRate().String(),
		GoalName:    goal.Name,
		GoalMonths:  strconv.Itoa(goal.DurationMonths),
		Currency:    currency,
		Theme:       theme.Active.Name,
	}
}

// Apply copies the answers into cfg. Blank answers keep the current values.
func (v SetupValues) Apply(cfg *config.Config) {
	if strings.TrimSpace(v.SavingsRate) != "" {
		if s, err := budget.New().SetSavingsRate(v.SavingsRate); err == nil {
			cfg.Budget.SavingsRate = s.SavingsRate().InexactFloat64()
		}
	}
	if name := strings.TrimSpace(v.GoalName); name != "" {
		cfg.Budget.GoalName = name
	}
	if months, err := strconv.Atoi(strings.TrimSpace(v.GoalMonths)); err == nil && months >= model.MinGoalMonths {
		cfg.Budget.GoalMonths = months
	}
	if v.Currency != "" {
		cfg.Budget.Currency = v.Currency
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
}

// NewSetupForm builds the first-run form writing into v. It is used both
// inside the planner and by `saveup setup`.
func NewSetupForm(v *SetupValues) *huh.Form {
	currencies := setupCurrencies
	if !containsString(currencies, v.Currency) && money.GetCurrency(v.Currency) != nil {
		currencies = append([]string{v.Currency}, currencies...)
	}
	currencyOpts := make([]huh.Option[string], 0, len(currencies))
	for _, code := range currencies {
		label := code
		if cur := money.GetCurrency(code); cur != nil {
			label = fmt.Sprintf("%s (%s)", code, cur.Grapheme)
		}
		currencyOpts = append(currencyOpts, huh.NewOption(label, code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to saveup!").
				Description("Pick the defaults every new budget starts with.\nRun `saveup setup` anytime to change them."),
			huh.NewInput().
				Title("Savings rate (%)").
				Placeholder("35").
				Value(&v.SavingsRate).
				Validate(validateSetupRate),
			huh.NewInput().
				Title("Savings goal").
				Placeholder(model.DefaultGoalName).
				Value(&v.GoalName),
			huh.NewInput().
				Title("Goal duration (months)").
				Placeholder("12").
				Value(&v.GoalMonths).
				Validate(validateSetupMonths),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOpts...).
				Value(&v.Currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}

func validateSetupRate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := budget.New().SetSavingsRate(s); err != nil {
		return errors.New("enter a percentage between 0 and 100")
	}
	return nil
}

func validateSetupMonths(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < model.MinGoalMonths {
		return fmt.Errorf("enter a whole number of months, at least %d", model.MinGoalMonths)
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.finishSetup()
		return a, textinput.Blink
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, textinput.Blink
	}

	return a, cmd
}

// finishSetup saves the answers and applies them to the running session.
func (a *App) finishSetup() {
	cfg := loadConfigOrDefault()
	a.setupVals.Apply(&cfg)

	if err := config.Save(cfg); err != nil {
		a.log.Warn("saving config after setup", zap.Error(err))
		a.setNotice("Could not save config, settings apply to this session only", true)
	}

	theme.SetActive(cfg.Appearance.Theme)
	a.currency = config.GetCurrency(cfg)
	if next, err := a.state.SetSavingsRate(a.setupVals.SavingsRate); err == nil {
		a.state = next
	}
	a.state = a.state.SetGoal(cfg.Budget.GoalName, strconv.Itoa(cfg.Budget.GoalMonths))
	a.syncInputs()
	a.recompute()

	a.needSetup = false
	a.setupForm = nil
}

// loadConfigOrDefault loads config, returning defaults on error.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}
