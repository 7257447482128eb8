package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category and overall totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		buckets := st.CategorySummary()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range st.Categories() {
			fmt.Fprintf(w, "%s\t%d\n", c, buckets[c])
		}
		fmt.Fprintf(w, "TOTAL\t%d\n", st.Total())
		return w.Flush()
	},
}
