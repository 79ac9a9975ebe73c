package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/strum/internal/screens/history"
	"github.com/abhisek/strum/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past practice sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.SessionRepo()
		sessions, err := repo.List(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		totals, err := repo.Totals(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions yet. Start practicing!")
			return nil
		}
		fmt.Fprintln(out, history.FormatTotals(totals))
		fmt.Fprintln(out)
		for _, s := range sessions {
			fmt.Fprintln(out, history.FormatSession(s))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to show (0 for all)")
}
