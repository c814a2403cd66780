package cmd

import (
	"github.com/spf13/cobra"

	"github.com/qazprep/qazprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "qazprep",
	Short: "Exam-prep test-result diagnostics",
	Long:  "QazPrep — diagnostic engine for UNT-style exam preparation: classifies topics from test results and generates localized practice plans.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QAZPREP_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Output language: en, ru or kz (default: attempt metadata)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QAZPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
