package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rfaguiar/secalloc/allocate"
)

func optimizeCmd() *cobra.Command {
	var (
		budget  float64
		timeout time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Allocate a supplemental budget across regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, proxy, err := loadDataset()
			if err != nil {
				return err
			}
			el, err := fitElasticities(ds, proxy)
			if err != nil {
				return err
			}

			plan, err := allocate.Allocate(cmd.Context(), ds, el, budget,
				allocate.Options{SolveTimeout: timeout})
			if err != nil {
				return err
			}
			log.Info("allocation solved",
				"budget", plan.Budget, "used", plan.BudgetUsed, "lives_saved", plan.LivesSaved)

			if asJSON {
				return printJSON(plan)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REGION\tGRANT\tAVERTED\tPROJECTED")
			for _, g := range plan.Grants {
				fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.1f\n", g.Code, g.Amount, g.DeathsAverted, g.ProjectedDeaths)
			}
			fmt.Fprintf(w, "TOTAL\t%.2f\t%.1f\t%.1f\n", plan.BudgetUsed, plan.LivesSaved, plan.ProjectedDeaths)
			return w.Flush()
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "total supplemental budget")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "LP solve timeout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}
