package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rfaguiar/secalloc/efficiency"
)

func rankCmd() *cobra.Command {
	var (
		outcome, economy float64
		asJSON           bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Efficiency ranking of regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := loadDataset()
			if err != nil {
				return err
			}

			ranking, err := efficiency.Rank(ds, efficiency.Weights{Outcome: outcome, Economy: economy})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(ranking)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REGION\tINDEX\tRATE\tSPEND/CAP\tTARGET RATE\tTARGET SPEND\t")
			for _, s := range ranking.Scores {
				mark := ""
				if s.Benchmark {
					mark = "benchmark"
				}
				fmt.Fprintf(w, "%s\t%.3f\t%.1f\t%.2f\t%.1f\t%.2f\t%s\n",
					s.Code, s.Index, s.Rate, s.Spend, s.TargetRate, s.TargetSpend, mark)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			for _, ex := range ranking.Exclusions {
				fmt.Printf("excluded: %s (%s)\n", ex.Code, ex.Reason)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&outcome, "outcome-weight", 0.75, "weight of the crime-rate component")
	cmd.Flags().Float64Var(&economy, "economy-weight", 0.25, "weight of the spend component")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}
