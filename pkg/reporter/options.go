package reporter

import (
	"io"
	"os"
	"time"

	"github.com/lumberlabs/pep8/pkg/style"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSource echoes the offending physical line with a caret under
	// each diagnostic.
	ShowSource bool

	// ShowPEP8 prints the rule prose under each diagnostic. Requires
	// Registry.
	ShowPEP8 bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Statistics prints per-code occurrence counts after the report.
	Statistics bool

	// Count suppresses per-diagnostic output and prints only the total.
	Count bool

	// Benchmark prints elapsed time and throughput after the report.
	// Requires Elapsed.
	Benchmark bool

	// Quiet reduces output: 1 reports only file names with issues,
	// 2 reports nothing (exit code only).
	Quiet int

	// Compact uses compact/minified output where applicable.
	Compact bool

	// Elapsed is the wall-clock duration of the run, for Benchmark.
	Elapsed time.Duration

	// Registry supplies rule prose for ShowPEP8.
	Registry *style.Registry

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
	}
}
