package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qazprep/qazprep/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all cached analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Fprint(cmd.OutOrStdout(), "This deletes all cached analyses. Continue? [y/N] ")
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = s.Close() }()

		if err := s.Results().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
