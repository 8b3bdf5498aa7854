package cmd

import (
	"os"

	"github.com/theirongolddev/saveup/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagIncome   string
	flagRate     string
	flagGoal     string
	flagMonths   string
	flagExpenses []string
	flagConfig   string
	flagLogFile  string
	flagVerbose  bool
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "saveup",
	Short: "Savings and expense planner",
	Long: "Plan a monthly budget: split income into savings and spending, track expenses\n" +
		"against what is left, and see how much a savings goal accumulates over time.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		config.SetPath(flagConfig)
	},
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagIncome, "income", "i", "", "Monthly income")
	rootCmd.PersistentFlags().StringVarP(&flagRate, "rate", "r", "", "Savings rate in percent (0-100)")
	rootCmd.PersistentFlags().StringVarP(&flagGoal, "goal", "g", "", "Savings goal name")
	rootCmd.PersistentFlags().StringVarP(&flagMonths, "months", "m", "", "Savings goal duration in months")
	rootCmd.PersistentFlags().StringArrayVarP(&flagExpenses, "expense", "e", nil, "Expense as name=amount (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/saveup/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
}
