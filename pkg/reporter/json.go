package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/lumberlabs/pep8/pkg/analysis"
	"github.com/lumberlabs/pep8/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Fixed       bool             `json:"fixed,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic. Row and Column are
// 1-based.
type JSONDiagnostic struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesFixed      int `json:"filesFixed"`
	FilesErrored    int `json:"filesErrored"`
	TotalIssues     int `json:"totalIssues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Files: make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for i := range result.Files {
		file := &result.Files[i]
		fileResult := JSONFileResult{
			Path:        makeRelative(file.Path, r.opts.WorkingDir),
			Diagnostics: make([]JSONDiagnostic, 0, len(file.Diagnostics)),
			Fixed:       file.Written,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		for j := range file.Diagnostics {
			diag := &file.Diagnostics[j]
			row, col := diag.Location()

			severity := analysis.SeverityError
			if diag.IsWarning() {
				severity = analysis.SeverityWarning
				output.Summary.Warnings++
			} else {
				output.Summary.Errors++
			}

			fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
				Code:     diag.Code,
				Severity: severity,
				Message:  diag.Message(),
				Row:      row,
				Column:   col + 1,
			})
			output.Summary.TotalIssues++
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Fixed {
			output.Summary.FilesFixed++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
