// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldMaxLineLength = "max_line_length"
	FieldFix           = "fix"
	FieldDryRun        = "dry_run"
	FieldJobs          = "jobs"
	FieldFormat        = "format"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesFixed       = "files_fixed"
	FieldLinesProcessed   = "lines_processed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Checker fields.
	FieldName        = "name"
	FieldCode        = "code"
	FieldCodes       = "codes"
	FieldKind        = "kind"
	FieldDescription = "description"
)
