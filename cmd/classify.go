package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qazprep/qazprep/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <question text>",
	Short: "Map question text to a canonical topic label",
	Long: "Classify resolves the subject and topic of a question from its text. " +
		"Use it to annotate questions that arrive without a topic before building an attempt file.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		var c classify.Classification
		if subject, _ := cmd.Flags().GetString("subject"); subject != "" {
			c = classify.ClassifyIn(classify.Subject(subject), text)
		} else {
			c = classify.Classify(text)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Subject:    %s\n", c.Subject)
		fmt.Fprintf(w, "Domain:     %s\n", c.Domain)
		fmt.Fprintf(w, "Topic:      %s\n", c.Topic)
		if len(c.Tags) > 0 {
			fmt.Fprintf(w, "Tags:       %s\n", strings.Join(c.Tags, ", "))
		}
		fmt.Fprintf(w, "Difficulty: %d/5\n", c.Difficulty)
		fmt.Fprintf(w, "Confidence: %.2f\n", c.Confidence)
		return nil
	},
}

func init() {
	classifyCmd.Flags().String("subject", "", "Skip subject detection: mathematics, history, math-literacy, physics or other")
}
