package style

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lumberlabs/pep8/pkg/config"
	"github.com/lumberlabs/pep8/pkg/pytokenize"
	"github.com/lumberlabs/pep8/pkg/source"
)

// ErrUnterminatedStatement reports a token stream that ended mid-statement.
// It indicates truncated or malformed input, not a style violation.
var ErrUnterminatedStatement = errors.New("style: unterminated statement at end of input")

// physicalOrigin adapts a raw line to the LineOrigin contract: columns on
// physical lines need no mapping.
type physicalOrigin struct {
	line source.PhysicalLine
}

func (o physicalOrigin) ResolveColumn(c Column) (int, int) {
	switch c.kind {
	case columnAt:
		return c.row, c.col
	case columnOffset:
		return o.line.Number, c.offset
	default:
		return o.line.Number, 0
	}
}

// Result is the ordered diagnostic sink for one file's analysis.
type Result struct {
	Diagnostics []Diagnostic
}

// HasCode reports whether any diagnostic carries the exact code.
func (r *Result) HasCode(code string) bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Code == code {
			return true
		}
	}
	return false
}

// Filtered returns the diagnostics surviving the ignore/select prefix
// lists, preserving order.
func (r *Result) Filtered(ignore, selected []string) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if !Suppressed(d.Code, ignore, selected) {
			out = append(out, d)
		}
	}
	return out
}

// Suppressed implements the selection rule: a code is suppressed iff it
// starts with an ignored prefix and does not start with a selected one.
func Suppressed(code string, ignore, selected []string) bool {
	for _, s := range selected {
		if s != "" && strings.HasPrefix(code, s) {
			return false
		}
	}
	for _, ig := range ignore {
		if ig != "" && strings.HasPrefix(code, ig) {
			return true
		}
	}
	return false
}

// Engine drives one file's analysis: it feeds physical lines to the
// tokenizer, fires physical checks as each line is read, accumulates
// tokens into statements, and dispatches logical checks at every
// statement boundary. One Engine instance is safe for sequential reuse;
// analyzing files in parallel takes one instance per file.
type Engine struct {
	registry *Registry
	cfg      *config.Config
}

// NewEngine creates an Engine using the given checker registry and
// configuration.
func NewEngine(registry *Registry, cfg *config.Config) *Engine {
	return &Engine{registry: registry, cfg: cfg}
}

// CheckSource analyzes raw file content.
func (e *Engine) CheckSource(ctx context.Context, content []byte) (*Result, error) {
	return e.Check(ctx, source.NewDocumentFromBytes(content))
}

// Check analyzes a prepared document. The returned Result holds every
// diagnostic in report order; filtering by ignore/select happens later so
// statistics can still see suppressed codes.
func (e *Engine) Check(ctx context.Context, doc *source.Document) (*Result, error) {
	res := &Result{}

	onPhysical := func(line source.PhysicalLine) {
		pctx := &PhysicalContext{Line: line, Document: doc, Config: e.cfg}
		for _, checker := range e.registry.physical {
			if d := checker.Check(pctx); d != nil {
				d.origin = physicalOrigin{line: line}
				res.Diagnostics = append(res.Diagnostics, *d)
			}
		}
	}

	var prev *LogicalLine
	onLogical := func(line *LogicalLine) {
		lctx := &LogicalContext{Line: line, Previous: prev, Document: doc, Config: e.cfg}
		for _, checker := range e.registry.logical {
			if d := checker.Check(lctx); d != nil {
				d.origin = line
				res.Diagnostics = append(res.Diagnostics, *d)
			}
		}
		prev = line
	}

	if err := run(ctx, doc, onPhysical, onLogical); err != nil {
		return res, err
	}
	return res, nil
}

// LogicalLines reconstructs every statement in the document without
// running any checkers. Useful for tooling and tests that inspect the
// normalized lines directly.
func LogicalLines(doc *source.Document) ([]*LogicalLine, error) {
	var lines []*LogicalLine
	err := run(context.Background(), doc, nil, func(line *LogicalLine) {
		lines = append(lines, line)
	})
	return lines, err
}

// run is the single-pass traversal shared by Check and LogicalLines. It
// owns the cross-line state: bracket depth, the statement token buffer,
// the blank-line counters, and the comment folding of spec'd blank-line
// bookkeeping.
func run(
	ctx context.Context,
	doc *source.Document,
	onPhysical func(source.PhysicalLine),
	onLogical func(*LogicalLine),
) error {
	lineNo := 0
	readLine := func() string {
		line := doc.Line(lineNo + 1)
		lineNo++
		if line != "" && onPhysical != nil {
			onPhysical(source.PhysicalLine{Text: line, Number: lineNo})
		}
		return line
	}

	tok := pytokenize.New(readLine)

	var buf []pytokenize.Token
	depth := 0
	blank := 0
	blankBeforeComment := 0

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("analysis cancelled: %w", err)
		}

		token, err := tok.Next()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnterminatedStatement, err)
		}
		if token.Kind == pytokenize.KindEndMarker {
			break
		}

		buf = append(buf, token)

		if token.Kind == pytokenize.KindOp {
			switch token.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			}
		}

		switch token.Kind {
		case pytokenize.KindNewline:
			if depth == 0 {
				if line := newLogicalLine(buf, doc, blank, blankBeforeComment); line != nil {
					line.Number = token.Start.Row
					if onLogical != nil {
						onLogical(line)
					}
				}
				blank = 0
				blankBeforeComment = 0
				buf = nil
			}

		case pytokenize.KindNL:
			if depth == 0 {
				if len(buf) <= 1 {
					// The physical line held only this token: a blank line.
					blank++
				}
				buf = nil
			}

		case pytokenize.KindComment:
			// A standalone comment folds the blank-line run into the
			// before-comment counter so decorator/def spacing rules still
			// see it across the comment.
			if token.Start.Col <= len(token.Line) &&
				strings.TrimSpace(token.Line[:token.Start.Col]) == "" {
				if blank > blankBeforeComment {
					blankBeforeComment = blank
				}
				blank = 0
			}
			// Guards against tokenizer variants that fold the terminator
			// into the comment instead of emitting a trailing NL.
			if depth == 0 && strings.HasSuffix(token.Text, "\n") {
				buf = nil
			}
		}
	}

	for _, leftover := range buf {
		if contributes(leftover.Kind) {
			return ErrUnterminatedStatement
		}
	}
	return nil
}
