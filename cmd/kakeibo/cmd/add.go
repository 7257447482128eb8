package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kakeibo/internal/core"
)

var (
	addDate     string
	addCategory string
	addAmount   string
	addMemo     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, cleanup, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		date := addDate
		if date == "" {
			date = time.Now().Format(core.DateLayout)
		}

		rec, err := st.Add(cmd.Context(), date, addCategory, addAmount, addMemo)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded #%d: %s %s %d %s\n",
			rec.ID, rec.Date, rec.Category, rec.Amount, rec.Memo)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "spend date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "expense category")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "amount in the smallest currency unit")
	addCmd.Flags().StringVar(&addMemo, "memo", "", "optional memo")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("amount")
}
