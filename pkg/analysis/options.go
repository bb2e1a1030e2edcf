package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by issue count.
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically by code or path.
	SortByAlpha SortField = "alpha"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeDiagnostics includes the flat diagnostics list.
	IncludeDiagnostics bool

	// IncludeByCode includes the per-code analysis.
	IncludeByCode bool

	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// SortBy specifies how to sort ByCode and ByFile.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults. Codes sort
// alphabetically, matching the classic statistics output.
func DefaultOptions() Options {
	return Options{
		IncludeDiagnostics: true,
		IncludeByCode:      true,
		IncludeByFile:      true,
		SortBy:             SortByAlpha,
	}
}
