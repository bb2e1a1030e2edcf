// Package runner provides multi-file style checking orchestration.
package runner

import (
	"github.com/lumberlabs/pep8/pkg/config"
	"github.com/lumberlabs/pep8/pkg/style"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// process. If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// FilePatterns are the glob patterns a walked file's name must match.
	// Defaults to ["*.py"] via DefaultFilePatterns(). Files named
	// directly in Paths bypass this filter.
	FilePatterns []string

	// ExcludeGlobs are glob patterns used to skip files or directories
	// during the walk, matched against base names and run-relative
	// paths. These merge exclude rules from config and CLI.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config

	// Registry supplies the checkers. Each worker builds its own engine
	// from it, so one registry serves the whole run.
	Registry *style.Registry
}

// DefaultFilePatterns returns the default Python file patterns.
func DefaultFilePatterns() []string {
	return []string{"*.py"}
}

// effectiveFilePatterns returns the patterns to use, defaulting if empty.
func (o Options) effectiveFilePatterns() []string {
	if len(o.FilePatterns) == 0 {
		return DefaultFilePatterns()
	}
	return o.FilePatterns
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
