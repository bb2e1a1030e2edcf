package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/lumberlabs/pep8/pkg/fix"
	"github.com/lumberlabs/pep8/pkg/fsutil"
	"github.com/lumberlabs/pep8/pkg/source"
	"github.com/lumberlabs/pep8/pkg/style"
)

// Runner orchestrates multi-file style checking.
type Runner struct {
	opts Options
}

// New creates a Runner with the given options.
func New(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Run discovers files under the configured paths and processes them
// concurrently. It returns a deterministic collection of FileOutcome
// values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	files, err := Discover(ctx, r.opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh. Each
// worker owns one engine; engines are not shared across goroutines.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	engine := style.NewEngine(r.opts.Registry, r.opts.Config)

	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, engine, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads, checks, and optionally fixes one file.
func (r *Runner) processFile(ctx context.Context, engine *style.Engine, path string) FileOutcome {
	outcome := FileOutcome{Path: path}
	cfg := r.opts.Config

	content, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	doc := source.NewDocumentFromBytes(content)
	res, err := engine.Check(ctx, doc)
	if err != nil {
		outcome.Error = fmt.Errorf("check %s: %w", path, err)
		return outcome
	}

	diags := res.Filtered(cfg.Ignore, cfg.Select)
	if cfg.First {
		diags = firstPerCode(diags)
	}

	outcome.Diagnostics = diags
	outcome.Source = doc
	outcome.Lines = doc.NumLines()

	if cfg.Fix {
		r.fixFile(ctx, path, content, snap, &outcome)
	}

	return outcome
}

// fixFile runs the fix pass and, outside dry runs, writes the result back
// with backup and concurrent-modification safeguards.
func (r *Runner) fixFile(
	ctx context.Context,
	path string,
	content []byte,
	snap *fsutil.Snapshot,
	outcome *FileOutcome,
) {
	cfg := r.opts.Config

	fixer := fix.NewFixer(r.opts.Registry, cfg)
	result, err := fixer.Fix(content)
	if err != nil {
		outcome.Error = fmt.Errorf("fix %s: %w", path, err)
		return
	}
	outcome.Fixed = result

	if !result.Changed() || cfg.DryRun {
		return
	}

	if cfg.Backups.Enabled && !cfg.NoBackups {
		created, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{
			Enabled: true,
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		})
		if err != nil {
			outcome.Error = fmt.Errorf("backup %s: %w", path, err)
			return
		}
		outcome.BackedUp = created
	}

	changed, err := fsutil.ChangedSince(ctx, snap)
	if err != nil {
		outcome.Error = fmt.Errorf("verify %s: %w", path, err)
		return
	}
	if changed {
		outcome.Error = fmt.Errorf("skip write: %s changed during the run", path)
		return
	}

	if err := fsutil.WriteAtomic(ctx, path, result.Fixed, snap.Mode); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", path, err)
		return
	}
	outcome.Written = true
}

// firstPerCode keeps only the first occurrence of each code, preserving
// order.
func firstPerCode(diags []style.Diagnostic) []style.Diagnostic {
	seen := make(map[string]struct{}, len(diags))
	out := diags[:0:0]
	for _, d := range diags {
		if _, ok := seen[d.Code]; ok {
			continue
		}
		seen[d.Code] = struct{}{}
		out = append(out, d)
	}
	return out
}
