package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qazprep/qazprep/internal/attempt"
	"github.com/qazprep/qazprep/internal/engine"
	"github.com/qazprep/qazprep/internal/locale"
)

var reportCmd = &cobra.Command{
	Use:   "report <attempt.json>",
	Short: "Print the rule-based diagnostic report for an attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read attempt file: %w", err)
		}
		att, err := attempt.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse attempt: %w", err)
		}

		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		out := engine.Analyze(att, cfg)

		pref := cfg.Language
		if pref == "" {
			pref = att.Metadata.PreferredLanguage
		}
		fmt.Fprint(cmd.OutOrStdout(), engine.Diagnostic(out, locale.Resolve(pref)))
		return nil
	},
}

func init() {
	reportCmd.Flags().Float64("weak-threshold", 0.6, "Accuracy ratio below which a topic is weak")
	reportCmd.Flags().Float64("borderline-threshold", 0.8, "Accuracy ratio both metrics must clear for strong")
	reportCmd.Flags().Int("min-items", 3, "Minimum sample size for full confidence")
}
