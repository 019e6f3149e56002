package main

import (
	"log/slog"
	"os"

	"github.com/danielhkuo/votekit/cli"
)

func main() {
	// Logs go to stderr so table output stays pipeable
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
