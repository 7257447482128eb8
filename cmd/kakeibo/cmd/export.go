package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the expense collection as CSV",
	Long: `Print the expense collection as CSV text in chronological order.
Pipe the output into a clipboard tool (pbcopy, xclip, wl-copy) to get the
original copy-to-clipboard behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Fprintln(cmd.OutOrStdout(), st.CSV())
		return nil
	},
}
