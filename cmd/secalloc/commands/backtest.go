package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rfaguiar/secalloc/backtest"
)

func backtestCmd() *cobra.Command {
	var (
		train, test int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Sliding-window accuracy of the trend model",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := loadDataset()
			if err != nil {
				return err
			}

			report, err := backtest.RunDataset(ds, backtest.Config{TrainWindow: train, TestWindow: test})
			if err != nil {
				return err
			}
			log.Info("backtest done",
				"regions", len(report.Regions), "skipped", report.Skipped, "mape", report.MAPE)

			if asJSON {
				return printJSON(report)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REGION\tWINDOWS\tSKIPPED\tMAPE")
			for _, r := range report.Regions {
				if r.Skipped != "" {
					fmt.Fprintf(w, "%s\t-\t%s\t-\n", r.Code, r.Skipped)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n",
					r.Code, len(r.Report.Windows), r.Report.SkippedCount, r.Report.MAPE)
			}
			fmt.Fprintf(w, "AGGREGATE\t\t\t%.1f%%\n", report.MAPE)
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&train, "train", backtest.DefaultTrainWindow, "training window in years")
	cmd.Flags().IntVar(&test, "test", backtest.DefaultTestWindow, "test horizon in years")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}
