package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/j2ghz/BetterQuestingTools/internal/cli"
)

// main is the entrypoint for the bqtool binary.
func main() {
	// Use a minimal logger until the root command configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command dispatch for easier testing.
func run(out io.Writer, args []string) error {
	root := cli.NewRootCmd(out)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
