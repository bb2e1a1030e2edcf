// Package main is the entry point for the pep8 CLI.
package main

import (
	"errors"
	"os"

	"github.com/lumberlabs/pep8/internal/cli"
	"github.com/lumberlabs/pep8/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrIssuesFound is just a signal for the exit code; the report
		// already went to the user.
		if !errors.Is(err, cli.ErrIssuesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitIssuesFound
	}

	return cli.ExitSuccess
}
