package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/saveup/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagReportRaw   bool
	flagReportStyle string
	flagReportWidth int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a markdown budget report",
	Long: "Render the budget, the expense ledger and the savings schedule as markdown.\n" +
		"The report is styled for the terminal unless --raw is given.",
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportRaw, "raw", false, "Print plain markdown")
	reportCmd.Flags().StringVar(&flagReportStyle, "style", "", "Glamour style (dark, light, notty, ...); detected when empty")
	reportCmd.Flags().IntVar(&flagReportWidth, "width", 80, "Word wrap width")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	sess, err := loadSession(false)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Log.Sync() }()

	r := report.New(sess.State, sess.Currency, time.Now())

	var out string
	if flagReportRaw {
		out, err = r.Markdown()
	} else {
		out, err = r.Render(flagReportStyle, flagReportWidth)
	}
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
