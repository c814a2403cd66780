package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qazprep/qazprep/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history <student-id>",
	Short: "Show a student's cached analyses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = s.Close() }()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := s.Results().History(cmd.Context(), args[0], limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No analyses recorded.")
			return nil
		}

		w := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(w, "%s  %-20s %5.1f%%\n",
				e.TakenAt.Format("2006-01-02 15:04"), e.TestID, e.OverallScorePct)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}
