package cli

import (
	"fmt"

	"github.com/j2ghz/BetterQuestingTools/internal/loader"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <export-dir>",
		Short: "Load an export and verify that every cross-reference resolves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loader.LoadDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d quests, %d quest lines\n", db.QuestCount(), db.LineCount())
			return nil
		},
	}
}
