package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/lumberlabs/pep8/pkg/langdetect"
)

// shebangProbeSize bounds how much of an extensionless file is read when
// probing for a Python shebang.
const shebangProbeSize = 128

// matcher holds the compiled include and exclude patterns for one run.
type matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

func newMatcher(opts Options) (*matcher, error) {
	m := &matcher{}
	for _, pattern := range opts.effectiveFilePatterns() {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile file pattern %q: %w", pattern, err)
		}
		m.include = append(m.include, g)
	}
	for _, pattern := range opts.ExcludeGlobs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", pattern, err)
		}
		m.exclude = append(m.exclude, g)
	}
	return m, nil
}

// excluded reports whether a walk entry should be skipped. Patterns match
// the entry's base name or its run-relative path.
func (m *matcher) excluded(relPath, base string) bool {
	for _, g := range m.exclude {
		if g.Match(base) || g.Match(filepath.ToSlash(relPath)) {
			return true
		}
	}
	return false
}

// matchesName reports whether a walked file name matches a file pattern.
func (m *matcher) matchesName(base string) bool {
	for _, g := range m.include {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Discover finds Python files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute file
// paths. Files named directly in opts.Paths are always included; walked
// files must match the file patterns, or carry a Python shebang when they
// have no extension.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m, err := newMatcher(opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, m, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				add(f)
			}
		} else {
			// Explicit file arguments bypass the pattern filter.
			add(absPath)
		}
	}

	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and returns matching Python
// files.
func walkDirectory(
	ctx context.Context,
	root string,
	workDir string,
	m *matcher,
	opts Options,
) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != root && m.excluded(relPath, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				// Broken symlink, skip silently.
				return nil //nolint:nilerr // Intentionally skip broken symlinks
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Intentionally skip inaccessible symlink targets
			}
			if info.IsDir() {
				// Directory symlink: skip unless FollowSymlinks is set.
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the symlink TARGET (realPath), not the symlink
				// itself. This avoids infinite recursion since WalkDir
				// uses Lstat on root.
				subFiles, err := walkDirectory(ctx, realPath, workDir, m, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
			// File symlink: continue to check as a regular file.
		}

		if m.excluded(relPath, entry.Name()) {
			return nil
		}

		if m.matchesName(entry.Name()) {
			files = append(files, path)
			return nil
		}

		// Extensionless files still count when they start with a
		// Python shebang.
		if filepath.Ext(entry.Name()) == "" && hasShebang(path) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// hasShebang reads the head of the file and reports whether it carries a
// Python shebang line. Unreadable files report false.
func hasShebang(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, shebangProbeSize)
	n, err := f.Read(head)
	if n == 0 || (err != nil && err != io.EOF) {
		return false
	}
	head = head[:n]
	if line, _, found := strings.Cut(string(head), "\n"); found {
		return langdetect.HasPythonShebang([]byte(line))
	}
	return langdetect.HasPythonShebang(head)
}
