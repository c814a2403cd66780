package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qazprep/qazprep/internal/attempt"
	"github.com/qazprep/qazprep/internal/engine"
	"github.com/qazprep/qazprep/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <attempt.json>",
	Short: "Analyze a test attempt and cache the result",
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

		if _, dropped := attempt.SplitUntopiced(att.Questions); dropped > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %d question(s) without a topic\n", dropped)
		}

		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		out := engine.Analyze(att, cfg)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode output: %w", err)
			}
		} else {
			printSummary(cmd, out)
		}

		if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
			if err := saveResult(cmd, out); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "Print the full analysis as JSON")
	analyzeCmd.Flags().Bool("no-save", false, "Do not cache the result")
	analyzeCmd.Flags().Float64("weak-threshold", 0.6, "Accuracy ratio below which a topic is weak")
	analyzeCmd.Flags().Float64("borderline-threshold", 0.8, "Accuracy ratio both metrics must clear for strong")
	analyzeCmd.Flags().Int("min-items", 3, "Minimum sample size for full confidence")
}

func configFromFlags(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if v, err := cmd.Flags().GetFloat64("weak-threshold"); err == nil {
		cfg.WeakThreshold = v
	}
	if v, err := cmd.Flags().GetFloat64("borderline-threshold"); err == nil {
		cfg.BorderlineThreshold = v
	}
	if v, err := cmd.Flags().GetInt("min-items"); err == nil {
		cfg.MinItemsForConfidence = v
	}
	if cfg.WeakThreshold >= cfg.BorderlineThreshold {
		return cfg, fmt.Errorf("weak threshold %.2f must be below borderline threshold %.2f",
			cfg.WeakThreshold, cfg.BorderlineThreshold)
	}
	cfg.Language, _ = cmd.Flags().GetString("lang")
	return cfg, nil
}

func printSummary(cmd *cobra.Command, out *engine.AnalysisOutput) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Student %s, test %s: %.1f%%\n\n", out.StudentID, out.TestID, out.OverallScorePct)

	fmt.Fprintln(w, "Topics (weakest first):")
	for _, t := range out.Topics {
		fmt.Fprintf(w, "  %-36s %-10s %5.1f%% correct, %5.1f%% score, confidence %.2f (n=%d)\n",
			t.Topic, t.Classification, t.PercentCorrect, t.AvgScorePct, t.Confidence, t.TotalItems)
	}

	fmt.Fprintln(w, "\nRecommended practice time:")
	for _, item := range out.RecommendedPracticeDistribution {
		fmt.Fprintf(w, "  %-36s %4.0f%%\n", item.Topic, item.Proportion*100)
	}

	fmt.Fprintf(w, "\nHomework: %d task(s), videos: %d\n", len(out.Homework), len(out.VideoRecommendations))
	fmt.Fprintf(w, "\nTeacher notes: %s\n", out.TeacherNotes)
	fmt.Fprintf(w, "Student message: %s\n", out.StudentMessage)
}

func saveResult(cmd *cobra.Command, out *engine.AnalysisOutput) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Results().Save(cmd.Context(), out); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}
