package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/j2ghz/BetterQuestingTools/internal/importance"
	"github.com/j2ghz/BetterQuestingTools/internal/loader"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// rankOptions mirrors the YAML options file accepted by --config. Flags set
// explicitly on the command line take precedence over the file.
type rankOptions struct {
	Alpha     float64 `yaml:"alpha"`
	LogScale  bool    `yaml:"log_scale"`
	Normalize bool    `yaml:"normalize"`
	Top       int     `yaml:"top"`
}

func defaultRankOptions() rankOptions {
	return rankOptions{Alpha: 0.25, LogScale: true, Normalize: true, Top: 20}
}

func loadRankOptions(path string) (rankOptions, error) {
	opts := defaultRankOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	return opts, nil
}

func newRankCmd() *cobra.Command {
	flagOpts := defaultRankOptions()
	var (
		configPath string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "rank <export-dir>",
		Short: "Rank quests by importance to the rest of the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flagOpts
			if configPath != "" {
				fileOpts, err := loadRankOptions(configPath)
				if err != nil {
					return err
				}
				opts = mergeRankOptions(cmd, fileOpts, flagOpts)
			}

			db, err := loader.LoadDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			scores, err := importance.Scores(db, importance.Options{
				Alpha:     opts.Alpha,
				LogScale:  opts.LogScale,
				Normalize: opts.Normalize,
			})
			if err != nil {
				return err
			}

			ranked := make([]importance.Scored, 0, len(scores))
			for _, id := range db.QuestIDs() {
				ranked = append(ranked, importance.Scored{ID: id, Score: scores[id]})
			}
			sort.SliceStable(ranked, func(i, j int) bool {
				if ranked[i].Score != ranked[j].Score {
					return ranked[i].Score > ranked[j].Score
				}
				return ranked[i].ID < ranked[j].ID
			})
			if opts.Top > 0 && len(ranked) > opts.Top {
				ranked = ranked[:opts.Top]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				doc := "[]"
				for i, r := range ranked {
					quest, _ := db.Quest(r.ID)
					prefix := fmt.Sprintf("%d.", i)
					if doc, err = sjson.Set(doc, prefix+"id", uint64(r.ID)); err != nil {
						return err
					}
					if doc, err = sjson.Set(doc, prefix+"name", quest.Name); err != nil {
						return err
					}
					if doc, err = sjson.Set(doc, prefix+"score", r.Score); err != nil {
						return err
					}
				}
				fmt.Fprintln(out, doc)
				return nil
			}
			for _, r := range ranked {
				quest, _ := db.Quest(r.ID)
				fmt.Fprintf(out, "%10.4f  %s  %s\n", r.Score, r.ID, quest.Name)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&flagOpts.Alpha, "alpha", flagOpts.Alpha, "Propagation factor in [0, 1].")
	cmd.Flags().BoolVar(&flagOpts.LogScale, "log-scale", flagOpts.LogScale, "Compress dependent counts with ln(1+n).")
	cmd.Flags().BoolVar(&flagOpts.Normalize, "normalize", flagOpts.Normalize, "Rescale scores into [0, 1).")
	cmd.Flags().IntVar(&flagOpts.Top, "top", flagOpts.Top, "Number of quests to print, 0 for all.")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML options file; explicit flags override it.")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the ranking as JSON.")
	return cmd
}

// mergeRankOptions starts from the options file and lets every flag the
// user set explicitly win over it.
func mergeRankOptions(cmd *cobra.Command, fileOpts, flagOpts rankOptions) rankOptions {
	merged := fileOpts
	if cmd.Flags().Changed("alpha") {
		merged.Alpha = flagOpts.Alpha
	}
	if cmd.Flags().Changed("log-scale") {
		merged.LogScale = flagOpts.LogScale
	}
	if cmd.Flags().Changed("normalize") {
		merged.Normalize = flagOpts.Normalize
	}
	if cmd.Flags().Changed("top") {
		merged.Top = flagOpts.Top
	}
	return merged
}
