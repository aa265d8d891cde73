package commands

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rfaguiar/secalloc/sensitivity"
)

func tornadoCmd() *cobra.Command {
	var (
		budget       float64
		perturbation float64
		topN         int
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "tornado",
		Short: "Rank parameters by outcome sensitivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, proxy, err := loadDataset()
			if err != nil {
				return err
			}
			el, err := fitElasticities(ds, proxy)
			if err != nil {
				return err
			}

			entries, err := sensitivity.Tornado(cmd.Context(), ds, el, budget, sensitivity.TornadoConfig{
				Perturbation: perturbation, TopN: topN,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(entries)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAMETER\tREGION\tLOW\tHIGH\tSWING")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
					e.Kind, orDash(e.Code), fmtSide(e.Low), fmtSide(e.High), e.Swing)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "total supplemental budget")
	cmd.Flags().Float64Var(&perturbation, "perturbation", sensitivity.DefaultPerturbation, "relative shock per parameter")
	cmd.Flags().IntVar(&topN, "top", 0, "keep only the N largest swings (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtSide(v float64) string {
	if math.IsNaN(v) {
		return "infeasible"
	}
	return fmt.Sprintf("%.1f", v)
}
