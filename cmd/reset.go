package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vexillo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the recorded LLM diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete diagnostics without --yes")
		}
		return withStore(cmd, func(repo store.EventRepo) error {
			n, err := repo.ResetLLMEvents(cmd.Context())
			if err != nil {
				return fmt.Errorf("reset events: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d LLM events.\n", n)
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm deletion")
}
