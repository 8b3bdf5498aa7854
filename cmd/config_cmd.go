// Package cmd implements the saveup CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/saveup/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Savings rate: %g%%\n", cfg.Budget.SavingsRate)
	fmt.Printf("    Goal:         %s (%d months)\n", cfg.Budget.GoalName, cfg.Budget.GoalMonths)
	fmt.Printf("    Currency:     %s\n", config.GetCurrency(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	if logFile := config.GetLogFile(cfg); logFile != "" {
		fmt.Printf("    File:  %s\n", logFile)
	} else {
		fmt.Println("    File:  disabled")
	}
	fmt.Println()

	if err := cfg.Validate(); err != nil {
		fmt.Println("  Problems:")
		fmt.Printf("    %v\n", err)
		fmt.Println("  Out-of-range budget values are ignored or clamped when a session starts.")
		fmt.Println()
	}

	fmt.Println("  Run `saveup setup` to reconfigure.")
	return nil
}
