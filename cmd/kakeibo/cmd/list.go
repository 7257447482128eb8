package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tMEMO")
		for _, r := range st.Records() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", r.ID, r.Date, r.Category, r.Amount, r.Memo)
		}
		return w.Flush()
	},
}
