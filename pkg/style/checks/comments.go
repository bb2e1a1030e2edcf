package checks

import (
	"strings"

	"github.com/lumberlabs/pep8/pkg/pytokenize"
	"github.com/lumberlabs/pep8/pkg/style"
)

// WhitespaceAroundInlineComment enforces inline comment spacing: at least
// two spaces before the '#', and '# ' starting the comment text.
type WhitespaceAroundInlineComment struct {
	style.BaseChecker
}

// NewWhitespaceAroundInlineComment creates the E261/E262 checker.
func NewWhitespaceAroundInlineComment() *WhitespaceAroundInlineComment {
	return &WhitespaceAroundInlineComment{
		BaseChecker: style.NewBaseChecker(
			"inline-comment",
			"An inline comment is a comment on the same line as a "+
				"statement. Inline comments should be separated by at least "+
				"two spaces from the statement. They should start with a # "+
				"and a single space.",
			"E261", "E262",
		),
	}
}

// Check examines comment tokens in the statement. Comments alone on their
// line are not inline and are skipped.
func (c *WhitespaceAroundInlineComment) Check(ctx *style.LogicalContext) *style.Diagnostic {
	var prevEnd pytokenize.Position
	for _, tok := range ctx.Line.Tokens {
		if tok.Kind == pytokenize.KindNL {
			continue
		}
		if tok.Kind != pytokenize.KindComment {
			prevEnd = tok.End
			continue
		}
		if tok.Start.Col <= len(tok.Line) &&
			strings.TrimSpace(tok.Line[:tok.Start.Col]) == "" {
			continue
		}
		text := tok.Text
		if len(text) > 1 &&
			(strings.HasPrefix(text, "#  ") || !strings.HasPrefix(text, "# ")) {
			return style.NewDiagnostic("E262", style.At(tok.Start.Row, tok.Start.Col))
		}
		if prevEnd.Row == tok.Start.Row && tok.Start.Col < prevEnd.Col+2 {
			return style.NewDiagnostic("E261", style.At(prevEnd.Row, prevEnd.Col))
		}
	}
	return nil
}
