package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/saveup/internal/budget"
	"github.com/theirongolddev/saveup/internal/config"
	"github.com/theirongolddev/saveup/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// sessionFlags are the command line values that seed a budget session.
type sessionFlags struct {
	Income   string
	Rate     string
	Goal     string
	Months   string
	Expenses []string
}

// session is everything a command needs to work on one budget.
type session struct {
	State    budget.State
	Config   config.Config
	Currency string
	Log      *zap.Logger
}

// loadSession is the shared setup path used by all budget commands: config,
// logger and a session built from the flags. Rejected flag values are
// reported on stderr unless --quiet is set.
func loadSession(interactive bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  %v, using defaults\n", err)
		}
		cfg = config.DefaultConfig()
	}

	level := cfg.Logging.Level
	if flagVerbose {
		level = "debug"
	}
	logFile := flagLogFile
	if logFile == "" {
		logFile = config.GetLogFile(cfg)
	}
	log, err := logger.New(logger.Options{
		Level:   level,
		File:    logFile,
		Console: flagVerbose && !interactive,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	state, warnings, err := buildSession(cfg, sessionFlags{
		Income:   flagIncome,
		Rate:     flagRate,
		Goal:     flagGoal,
		Months:   flagMonths,
		Expenses: flagExpenses,
	})
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warn(w)
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
		}
	}

	log.Debug("session ready",
		zap.String("income", state.Income().String()),
		zap.String("savings_rate", state.SavingsRate().String()),
		zap.Int("expenses", state.Len()),
	)

	return &session{
		State:    state,
		Config:   cfg,
		Currency: config.GetCurrency(cfg),
		Log:      log,
	}, nil
}

// buildSession starts from the configured defaults and applies the flags in
// order: income, rate, goal, expenses. A rejected rate becomes a warning; a
// malformed expense aborts with an error wrapping budget.ErrInvalidExpense.
func buildSession(cfg config.Config, f sessionFlags, opts ...budget.Option) (budget.State, []string, error) {
	defaults := []budget.Option{budget.WithGoal(cfg.Budget.GoalName, cfg.Budget.GoalMonths)}
	if rate := cfg.Budget.SavingsRate; !math.IsNaN(rate) && !math.IsInf(rate, 0) {
		defaults = append(defaults, budget.WithSavingsRate(decimal.NewFromFloat(rate)))
	}
	opts = append(defaults, opts...)
	s := budget.New(opts...)

	var warnings []string

	if f.Income != "" {
		s = s.SetIncome(f.Income)
	}

	if f.Rate != "" {
		next, err := s.SetSavingsRate(f.Rate)
		if errors.Is(err, budget.ErrInvalidRate) {
			warnings = append(warnings, fmt.Sprintf("ignoring --rate %q: must be a number between 0 and 100, keeping %s%%", f.Rate, s.SavingsRate()))
		} else {
			s = next
		}
	}

	if f.Goal != "" || f.Months != "" {
		goal := s.Goal()
		name, months := f.Goal, f.Months
		if name == "" {
			name = goal.Name
		}
		if months == "" {
			months = strconv.Itoa(goal.DurationMonths)
		}
		s = s.SetGoal(name, months)
	}

	for _, raw := range f.Expenses {
		name, amount, err := splitExpense(raw)
		if err != nil {
			return s, warnings, err
		}
		next, _, err := s.AddExpense(name, amount)
		if err != nil {
			return s, warnings, fmt.Errorf("--expense %q: %w", raw, err)
		}
		s = next
	}

	return s, warnings, nil
}

// splitExpense parses "name=amount". The last '=' separates the amount so
// names may contain '='.
func splitExpense(raw string) (name, amount string, err error) {
	i := strings.LastIndex(raw, "=")
	if i < 0 {
		return "", "", fmt.Errorf("--expense %q: %w: expected name=amount", raw, budget.ErrInvalidExpense)
	}
	return raw[:i], raw[i+1:], nil
}
