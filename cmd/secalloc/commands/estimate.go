package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func estimateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Fit budget elasticities from each region's history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, proxy, err := loadDataset()
			if err != nil {
				return err
			}
			el, err := fitElasticities(ds, proxy)
			if err != nil {
				return err
			}

			codes := ds.Codes()
			sort.Strings(codes)
			if asJSON {
				return printJSON(el)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REGION\tEPSILON\tR2\tPAIRS\tWINDOW")
			for _, code := range codes {
				r := el[code]
				fmt.Fprintf(w, "%s\t%+.4f\t%.3f\t%d\t%d–%d\n",
					code, r.Epsilon, r.RSquared, r.Pairs, r.FirstYear, r.LastYear)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}
