package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/j2ghz/BetterQuestingTools/internal/ctxlog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with all subcommands attached. out
// receives normal command output; logs go to stderr.
func NewRootCmd(out io.Writer) *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)
	root := &cobra.Command{
		Use:   "bqtool",
		Short: "Inspect and validate BetterQuesting quest database exports",
		Long: `bqtool loads a DefaultQuests export directory into a validated quest
database and reports on it. A load either succeeds completely or fails on
the first inconsistency; there are no partial results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(os.Stderr, logLevel, logFormat)
		if err != nil {
			return err
		}
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	}

	root.AddCommand(newValidateCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newRankCmd())
	return root
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}
