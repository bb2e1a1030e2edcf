package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"

	"github.com/lumberlabs/pep8/internal/ui/pretty"
	"github.com/lumberlabs/pep8/pkg/analysis"
	"github.com/lumberlabs/pep8/pkg/runner"
	"github.com/lumberlabs/pep8/pkg/style"
)

// Quiet levels.
const (
	quietFilesOnly = 1
	quietSilent    = 2
)

// TextReporter writes diagnostics in the classic
// "path:row:col: CODE message" shape, styled for terminals.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for i := range result.Files {
		file := &result.Files[i]
		displayPath := makeRelative(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		n := len(file.Diagnostics)
		if n == 0 {
			continue
		}
		total += n

		if r.opts.Count || r.opts.Quiet >= quietSilent {
			continue
		}
		if r.opts.Quiet == quietFilesOnly {
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(displayPath, n))
			continue
		}

		for j := range file.Diagnostics {
			r.writeDiagnostic(displayPath, file, &file.Diagnostics[j])
		}
	}

	if r.opts.Count {
		fmt.Fprintln(r.bw, total)
	}
	if r.opts.Statistics {
		r.writeStatistics(result)
	}
	if r.opts.Benchmark {
		r.writeBenchmark(result.Stats)
	}
	if r.opts.ShowSummary && r.opts.Quiet < quietSilent {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// writeDiagnostic renders one diagnostic with its optional source echo
// and rule prose.
func (r *TextReporter) writeDiagnostic(displayPath string, file *runner.FileOutcome, diag *style.Diagnostic) {
	row, col := diag.Location()

	severity := analysis.SeverityError
	if diag.IsWarning() {
		severity = analysis.SeverityWarning
	}

	entry := analysis.DiagnosticEntry{
		FilePath: displayPath,
		Code:     diag.Code,
		Severity: severity,
		Message:  diag.Message(),
		Row:      row,
		Column:   col + 1,
	}
	fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&entry))

	if r.opts.ShowSource && file.Source != nil {
		if line := file.Source.Line(row); line != "" {
			fmt.Fprint(r.bw, r.styles.FormatSourceContext(line, entry.Column))
		}
	}

	if r.opts.ShowPEP8 && r.opts.Registry != nil {
		fmt.Fprint(r.bw, r.styles.FormatRuleProse(r.opts.Registry.DescriptionFor(diag.Code)))
	}
}

// writeStatistics prints per-code occurrence counts in the classic
// "count  code  message" layout, alphabetical by code.
func (r *TextReporter) writeStatistics(result *runner.Result) {
	report := analysis.Analyze(result, analysis.Options{
		IncludeByCode: true,
		SortBy:        analysis.SortByAlpha,
		WorkingDir:    r.opts.WorkingDir,
	})
	for _, code := range report.ByCode {
		fmt.Fprintf(r.bw, "%-7d %s %s\n", code.Count, code.Code, code.Message)
	}
}

// writeBenchmark prints elapsed time and throughput.
func (r *TextReporter) writeBenchmark(stats runner.Stats) {
	bench := analysis.MeasureBenchmark(stats, r.opts.Elapsed)
	fmt.Fprintf(r.bw, "%-7.2f elapsed seconds\n", bench.Elapsed.Seconds())
	fmt.Fprintf(r.bw, "%-7.0f lines per second\n", bench.LinesPerSecond)
	fmt.Fprintf(r.bw, "%-7.0f files per second\n", bench.FilesPerSecond)
}

// makeRelative converts an absolute path to a workDir-relative one for
// display. Unresolvable paths pass through unchanged.
func makeRelative(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}
