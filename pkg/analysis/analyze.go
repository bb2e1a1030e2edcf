package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/lumberlabs/pep8/pkg/runner"
	"github.com/lumberlabs/pep8/pkg/style"
)

// makeRelativePath converts an absolute path to a relative path from
// workDir. If workDir is empty or conversion fails, returns the original
// path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	codeMap   map[string]*CodeAnalysis
	fileMap   map[string]*FileAnalysis
	codeFiles map[string]map[string]bool
	fileCodes map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		codeMap:   make(map[string]*CodeAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		codeFiles: make(map[string]map[string]bool),
		fileCodes: make(map[string]map[string]bool),
	}
}

// getOrCreateFileAnalysis returns existing or creates new FileAnalysis.
func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileCodes[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

// getOrCreateCodeAnalysis returns existing or creates new CodeAnalysis.
// The first message seen becomes the code's example message.
func (ctx *analysisContext) getOrCreateCodeAnalysis(code, message string) *CodeAnalysis {
	if _, ok := ctx.codeMap[code]; !ok {
		ctx.codeMap[code] = &CodeAnalysis{Code: code, Message: message}
		ctx.codeFiles[code] = make(map[string]bool)
	}
	return ctx.codeMap[code]
}

// buildByCode constructs the ByCode slice from accumulated data.
func (ctx *analysisContext) buildByCode(opts Options) []CodeAnalysis {
	result := make([]CodeAnalysis, 0, len(ctx.codeMap))
	for code, ca := range ctx.codeMap {
		for f := range ctx.codeFiles[code] {
			ca.Files = append(ca.Files, f)
		}
		slices.Sort(ca.Files)
		result = append(result, *ca)
	}
	sortCodeAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByFile constructs the ByFile slice from accumulated data.
func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Issues == 0 {
			continue
		}
		for c := range ctx.fileCodes[path] {
			fa.Codes = append(fa.Codes, c)
		}
		slices.Sort(fa.Codes)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report. It performs a single
// pass through diagnostics to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for i := range result.Files {
		file := &result.Files[i]
		report.Totals.Files++
		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if len(file.Diagnostics) > 0 {
			report.Totals.FilesWithIssues++
		}

		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		fa := ctx.getOrCreateFileAnalysis(displayPath)

		for j := range file.Diagnostics {
			diag := &file.Diagnostics[j]
			report.Totals.Issues++

			severity := SeverityError
			if diag.IsWarning() {
				severity = SeverityWarning
				report.Totals.Warnings++
				fa.Warnings++
			} else {
				report.Totals.Errors++
				fa.Errors++
			}

			fa.Issues++
			ctx.fileCodes[displayPath][diag.Code] = true

			ca := ctx.getOrCreateCodeAnalysis(diag.Code, diag.Message())
			ca.Count++
			ctx.codeFiles[diag.Code][displayPath] = true

			if opts.IncludeDiagnostics {
				report.Diagnostics = append(report.Diagnostics, newDiagnosticEntry(displayPath, severity, diag))
			}
		}
	}

	if opts.IncludeByCode {
		report.ByCode = ctx.buildByCode(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

// newDiagnosticEntry builds a DiagnosticEntry from a style diagnostic.
// Columns shift from the engine's 0-based coordinates to the 1-based
// report convention.
func newDiagnosticEntry(path, severity string, diag *style.Diagnostic) DiagnosticEntry {
	row, col := diag.Location()
	return DiagnosticEntry{
		FilePath: path,
		Code:     diag.Code,
		Severity: severity,
		Message:  diag.Message(),
		Row:      row,
		Column:   col + 1,
	}
}

// MeasureBenchmark derives throughput figures from run stats and the
// elapsed wall-clock time.
func MeasureBenchmark(stats runner.Stats, elapsed time.Duration) Benchmark {
	b := Benchmark{
		Elapsed: elapsed,
		Files:   stats.FilesProcessed,
		Lines:   stats.LinesProcessed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		b.FilesPerSecond = float64(b.Files) / secs
		b.LinesPerSecond = float64(b.Lines) / secs
	}
	return b
}

func sortCodeAnalysis(codes []CodeAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(codes, func(left, right CodeAnalysis) int {
		switch sortBy {
		case SortByCount:
			result := cmp.Compare(left.Count, right.Count)
			if result == 0 {
				result = cmp.Compare(left.Code, right.Code)
			}
			if desc {
				result = -result
			}
			return result
		default: // SortByAlpha
			return cmp.Compare(left.Code, right.Code)
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByCount:
			result := cmp.Compare(left.Issues, right.Issues)
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			if desc {
				result = -result
			}
			return result
		default: // SortByAlpha
			return cmp.Compare(left.Path, right.Path)
		}
	})
}
