package runner

import (
	"github.com/lumberlabs/pep8/pkg/fix"
	"github.com/lumberlabs/pep8/pkg/source"
	"github.com/lumberlabs/pep8/pkg/style"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Diagnostics are the surviving diagnostics in report order, after
	// ignore/select filtering and first-occurrence reduction.
	Diagnostics []style.Diagnostic

	// Source is the analyzed document. Reporters use it to render the
	// offending physical line. Nil when the file errored.
	Source *source.Document

	// Lines is the number of physical lines processed.
	Lines int

	// Fixed holds the fix pass result when fixing was requested.
	Fixed *fix.Result

	// Written reports whether the fixed content was written back.
	Written bool

	// BackedUp reports whether a backup was created before writing.
	BackedUp bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesFixed is the number of files rewritten by the fix pass.
	FilesFixed int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// Errors counts error-class (E) diagnostics.
	Errors int

	// Warnings counts warning-class (W) diagnostics.
	Warnings int

	// LinesProcessed is the total number of physical lines analyzed.
	LinesProcessed int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.LinesProcessed += outcome.Lines

	if outcome.Written {
		r.Stats.FilesFixed++
	}

	if len(outcome.Diagnostics) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.DiagnosticsTotal += len(outcome.Diagnostics)

	for i := range outcome.Diagnostics {
		if outcome.Diagnostics[i].IsWarning() {
			r.Stats.Warnings++
		} else {
			r.Stats.Errors++
		}
	}
}
