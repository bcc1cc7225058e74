package cli

import (
	"fmt"

	"github.com/j2ghz/BetterQuestingTools/internal/loader"
	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

func newStatsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats <export-dir>",
		Short: "Summarize a loaded export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loader.LoadDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s := collectStats(db)
			out := cmd.OutOrStdout()
			if asJSON {
				doc, err := s.json()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, doc)
				return nil
			}
			fmt.Fprintf(out, "format version: %s\n", orDash(s.Version))
			fmt.Fprintf(out, "quests:         %d\n", s.Quests)
			fmt.Fprintf(out, "quest lines:    %d\n", s.Lines)
			fmt.Fprintf(out, "line entries:   %d\n", s.Entries)
			fmt.Fprintf(out, "tasks:          %d\n", s.Tasks)
			fmt.Fprintf(out, "rewards:        %d\n", s.Rewards)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the summary as JSON.")
	return cmd
}

type stats struct {
	Version string
	Quests  int
	Lines   int
	Entries int
	Tasks   int
	Rewards int
}

func collectStats(db *model.QuestDatabase) stats {
	s := stats{
		Version: db.Settings().Version,
		Quests:  db.QuestCount(),
		Lines:   db.LineCount(),
	}
	for _, id := range db.QuestIDs() {
		q, _ := db.Quest(id)
		s.Tasks += len(q.Tasks)
		s.Rewards += len(q.Rewards)
	}
	for _, id := range db.LineIDs() {
		l, _ := db.Line(id)
		s.Entries += len(l.Entries)
	}
	return s
}

func (s stats) json() (string, error) {
	doc := "{}"
	var err error
	for _, field := range []struct {
		key   string
		value any
	}{
		{"version", s.Version},
		{"quests", s.Quests},
		{"questLines", s.Lines},
		{"lineEntries", s.Entries},
		{"tasks", s.Tasks},
		{"rewards", s.Rewards},
	} {
		if doc, err = sjson.Set(doc, field.key, field.value); err != nil {
			return "", err
		}
	}
	return doc, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
