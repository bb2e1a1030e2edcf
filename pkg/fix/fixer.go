package fix

import (
	"bytes"

	"github.com/lumberlabs/pep8/pkg/config"
	"github.com/lumberlabs/pep8/pkg/source"
	"github.com/lumberlabs/pep8/pkg/style"
)

// Result describes one file's fix pass.
type Result struct {
	// Original is the content the pass started from.
	Original []byte

	// Fixed is the content after all applicable fixes.
	Fixed []byte

	// LinesChanged counts the physical lines the pass rewrote.
	LinesChanged int
}

// Changed reports whether the pass altered the content.
func (r *Result) Changed() bool {
	return !bytes.Equal(r.Original, r.Fixed)
}

// Diff renders the pass as a unified diff, or nil when nothing changed.
func (r *Result) Diff(path string) *Diff {
	return GenerateDiff(path, r.Original, r.Fixed)
}

// Fixer runs the fixable physical checkers over a file's lines. Each
// line flows through every fixer in registration order; a line is
// rewritten once with the combined result, so edits never overlap.
type Fixer struct {
	fixers []style.PhysicalFixer
	cfg    *config.Config
}

// NewFixer creates a Fixer from the registry's physical checkers that
// implement FixLine.
func NewFixer(registry *style.Registry, cfg *config.Config) *Fixer {
	f := &Fixer{cfg: cfg}
	for _, checker := range registry.Physical() {
		if fixer, ok := checker.(style.PhysicalFixer); ok {
			f.fixers = append(f.fixers, fixer)
		}
	}
	return f
}

// Fix rewrites content, clearing every fixable diagnostic.
func (f *Fixer) Fix(content []byte) (*Result, error) {
	doc := source.NewDocumentFromBytes(content)
	builder := NewEditBuilder()

	offset := 0
	changed := 0
	for n := 1; n <= doc.NumLines(); n++ {
		original := doc.Line(n)
		text := original
		for _, fixer := range f.fixers {
			ctx := &style.PhysicalContext{
				Line:     source.PhysicalLine{Text: text, Number: n},
				Document: doc,
				Config:   f.cfg,
			}
			text = fixer.FixLine(ctx)
		}
		if text != original {
			builder.ReplaceRange(offset, offset+len(original), text)
			changed++
		}
		offset += len(original)
	}

	edits, err := PrepareEdits(builder.Edits, len(content))
	if err != nil {
		return nil, err
	}

	return &Result{
		Original:     content,
		Fixed:        ApplyEdits(content, edits),
		LinesChanged: changed,
	}, nil
}
