// Package config loads and saves the saveup TOML configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Rhymond/go-money"
)

// Config holds all saveup configuration.
type Config struct {
	Budget     BudgetConfig     `toml:"budget"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// BudgetConfig holds the values a new planning session starts with.
type BudgetConfig struct {
	SavingsRate float64 `toml:"savings_rate"`
	GoalName    string  `toml:"goal_name"`
	GoalMonths  int     `toml:"goal_months"`
	Currency    string  `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls the diagnostic log. An empty File disables it.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Budget: BudgetConfig{
			SavingsRate: 35,
			GoalName:    "Dream Trip",
			GoalMonths:  12,
			Currency:    money.USD,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

var pathOverride string

// SetPath makes Load, Save and Exists use path instead of the XDG location.
// An empty path restores the default.
func SetPath(path string) {
	pathOverride = path
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "saveup")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "saveup")
}

// Path returns the full path to the config file.
func Path() string {
	if pathOverride != "" {
		return pathOverride
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate checks the budget defaults and the currency code.
func (c Config) Validate() error {
	var errs []error
	rate := c.Budget.SavingsRate
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 || rate > 100 {
		errs = append(errs, fmt.Errorf("budget.savings_rate %v is outside [0,100]", c.Budget.SavingsRate))
	}
	if c.Budget.GoalMonths < 1 {
		errs = append(errs, fmt.Errorf("budget.goal_months %d is less than 1", c.Budget.GoalMonths))
	}
	if money.GetCurrency(GetCurrency(c)) == nil {
		errs = append(errs, fmt.Errorf("budget.currency %q is not a known currency code", GetCurrency(c)))
	}
	return errors.Join(errs...)
}

// GetCurrency returns the display currency from env var or config, in that order.
func GetCurrency(cfg Config) string {
	if cur := os.Getenv("SAVEUP_CURRENCY"); cur != "" {
		return strings.ToUpper(cur)
	}
	if cfg.Budget.Currency == "" {
		return money.USD
	}
	return strings.ToUpper(cfg.Budget.Currency)
}

// GetLogFile returns the log file path from env var or config, in that order.
func GetLogFile(cfg Config) string {
	if path := os.Getenv("SAVEUP_LOG_FILE"); path != "" {
		return path
	}
	return cfg.Logging.File
}
