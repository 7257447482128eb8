package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid expense id %q", args[0])
		}

		st, _, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		if err := st.Delete(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
		return nil
	},
}
