package cli

import (
	"os"

	"github.com/j2ghz/BetterQuestingTools/internal/dot"
	"github.com/j2ghz/BetterQuestingTools/internal/loader"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "graph <export-dir>",
		Short: "Render the prerequisite graph as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loader.LoadDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return dot.Render(w, db)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write DOT to a file instead of stdout.")
	return cmd
}
