package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumberlabs/pep8/internal/configloader"
	"github.com/lumberlabs/pep8/internal/logging"
	"github.com/lumberlabs/pep8/pkg/config"
	"github.com/lumberlabs/pep8/pkg/reporter"
	"github.com/lumberlabs/pep8/pkg/runner"
	"github.com/lumberlabs/pep8/pkg/style/checks"
)

// ErrIssuesFound is returned when style issues are found.
var ErrIssuesFound = errors.New("style issues found")

type checkFlags struct {
	format         string
	maxLineLength  int
	ignore         []string
	selectCodes    []string
	exclude        []string
	filePatterns   []string
	followSymlinks bool
	compact        bool
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Python files for style issues",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check Python source files against the PEP 8 style conventions.

By default, checks all .py files in the current directory and
subdirectories. Specify paths to check specific files or directories.
Files named directly are checked regardless of their extension.

Examples:
  pep8 check                     # Check current directory
  pep8 check src/                # Check src directory
  pep8 check app.py              # Check single file
  pep8 check --fix               # Check and auto-fix whitespace issues
  pep8 check --fix --dry-run     # Show fixes without applying
  pep8 check --format json       # Output as JSON for CI
  pep8 check --show-source       # Echo offending lines with a caret
  pep8 check --ignore E501,W291  # Suppress codes by prefix
  pep8 check --statistics -q -q  # Per-code counts only`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	// "diff" is reporter-only, not a persistable config format.
	if cmd.Flags().Changed("format") {
		if parsed, err := config.ParseFormat(flags.format); err == nil {
			cfg.Format = parsed
		}
	}
	if cmd.Flags().Changed("max-line-length") {
		cfg.MaxLineLength = flags.maxLineLength
	}
	cfg.Ignore = flags.ignore
	cfg.Select = flags.selectCodes
	cfg.Exclude = flags.exclude

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldMaxLineLength, finalCfg.MaxLineLength,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// --format diff implies fixing in memory without touching files.
	if flags.format == string(reporter.FormatDiff) {
		finalCfg.Fix = true
		finalCfg.DryRun = true
	}

	registry := checks.NewDefaultRegistry()

	checkRunner := runner.New(runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		FilePatterns:   flags.filePatterns,
		ExcludeGlobs:   finalCfg.Exclude,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           finalCfg.Jobs,
		Config:         finalCfg,
		Registry:       registry,
	})

	logger.Debug("starting check run",
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, finalCfg.Jobs,
	)

	start := time.Now()
	result, err := checkRunner.Run(ctx)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}
	elapsed := time.Since(start)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	// The config file's format applies unless --format was given.
	formatStr := flags.format
	if !cmd.Flags().Changed("format") && finalCfg.Format != "" {
		formatStr = string(finalCfg.Format)
	}
	format, err := reporter.ParseFormat(formatStr)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSource:  finalCfg.ShowSource,
		ShowPEP8:    finalCfg.ShowPEP8,
		ShowSummary: true,
		Statistics:  finalCfg.Statistics,
		Count:       finalCfg.Count,
		Benchmark:   finalCfg.Benchmark,
		Quiet:       finalCfg.Quiet,
		Compact:     flags.compact,
		Elapsed:     elapsed,
		Registry:    registry,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix whitespace issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().IntVar(&flags.maxLineLength, "max-line-length", config.DefaultMaxLineLength,
		"physical line length limit")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "code prefixes to suppress")
	cmd.Flags().StringSliceVar(&flags.selectCodes, "select", nil,
		"code prefixes to report even when an ignore prefix matches")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil,
		"glob patterns skipped during discovery")
	cmd.Flags().StringSliceVar(&flags.filePatterns, "filename", nil,
		"file name patterns checked when walking directories (default *.py)")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false,
		"traverse directory symlinks during discovery")
	cmd.Flags().BoolVar(&cfg.ShowSource, "show-source", false,
		"echo the offending physical line under each diagnostic")
	cmd.Flags().BoolVar(&cfg.ShowPEP8, "show-pep8", false,
		"print the rule prose under each diagnostic")
	cmd.Flags().BoolVar(&cfg.Statistics, "statistics", false,
		"print per-code occurrence counts after the report")
	cmd.Flags().BoolVar(&cfg.Count, "count", false,
		"print only the total number of diagnostics")
	cmd.Flags().CountVarP(&cfg.Quiet, "quiet", "q",
		"report only file names; repeat to report nothing")
	cmd.Flags().BoolVar(&cfg.First, "first", false,
		"report only the first occurrence of each code per file")
	cmd.Flags().BoolVar(&cfg.Benchmark, "benchmark", false,
		"print elapsed time and throughput after the report")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
}
