// Package analysis turns runner results into aggregate views: per-code
// statistics, per-file rollups, and benchmark figures. Computed once by
// Analyze(), consumed by every reporter.
package analysis

import "time"

// Severity labels for diagnostic entries.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Report contains pre-computed views of a run's diagnostics.
type Report struct {
	// Diagnostics is the flat list for detailed output, in report order.
	Diagnostics []DiagnosticEntry `json:"diagnostics,omitempty"`

	// ByCode groups diagnostics by code for --statistics.
	ByCode []CodeAnalysis `json:"byCode,omitempty"`

	// ByFile groups diagnostics by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// DiagnosticEntry represents a single diagnostic in the report. Row and
// Column are 1-based, matching the classic report format.
type DiagnosticEntry struct {
	FilePath string `json:"filePath"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Issues          int `json:"totalIssues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Codes    []string `json:"codes,omitempty"`
}

// CodeAnalysis contains aggregated data for a single diagnostic code.
type CodeAnalysis struct {
	// Code is the diagnostic code, e.g. "E501".
	Code string `json:"code"`

	// Count is the number of occurrences across all files.
	Count int `json:"count"`

	// Message is the first message seen for the code, shown as the
	// example in statistics output.
	Message string `json:"message"`

	// Files lists the files the code appeared in, sorted.
	Files []string `json:"files,omitempty"`
}

// Benchmark holds run throughput figures.
type Benchmark struct {
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// Files is the number of files processed.
	Files int `json:"files"`

	// Lines is the number of physical lines analyzed.
	Lines int `json:"lines"`

	// FilesPerSecond is Files divided by Elapsed.
	FilesPerSecond float64 `json:"filesPerSecond"`

	// LinesPerSecond is Lines divided by Elapsed.
	LinesPerSecond float64 `json:"linesPerSecond"`
}
