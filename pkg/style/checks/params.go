package checks

import (
	"github.com/lumberlabs/pep8/pkg/pytokenize"
	"github.com/lumberlabs/pep8/pkg/style"
)

// WhitespaceBeforeParameters flags whitespace before the open paren of a
// call or the open bracket of an indexing/slicing expression.
type WhitespaceBeforeParameters struct {
	style.BaseChecker
}

// NewWhitespaceBeforeParameters creates the E211 checker.
func NewWhitespaceBeforeParameters() *WhitespaceBeforeParameters {
	return &WhitespaceBeforeParameters{
		BaseChecker: style.NewBaseChecker(
			"whitespace-before-parameters",
			"Avoid extraneous whitespace immediately before the open "+
				"parenthesis that starts the argument list of a function "+
				"call, or before the open bracket that starts an indexing or "+
				"slicing.",
			"E211",
		),
	}
}

// Check looks for a gap between a name (or closing bracket) and an
// opening paren or bracket. Keywords are exempt, as is the base list of a
// class statement.
func (c *WhitespaceBeforeParameters) Check(ctx *style.LogicalContext) *style.Diagnostic {
	tokens := ctx.Line.Tokens
	if len(tokens) == 0 {
		return nil
	}
	prevKind := tokens[0].Kind
	prevText := tokens[0].Text
	prevEnd := tokens[0].End
	for index := 1; index < len(tokens); index++ {
		tok := tokens[index]
		if tok.Kind == pytokenize.KindOp &&
			(tok.Text == "(" || tok.Text == "[") &&
			tok.Start != prevEnd &&
			(prevKind == pytokenize.KindName || isCloseBracket(prevText)) &&
			(index < 2 || tokens[index-2].Text != "class") &&
			!pythonKeywords[prevText] {
			return style.NewDiagnostic("E211", style.At(prevEnd.Row, prevEnd.Col), tok.Text)
		}
		prevKind = tok.Kind
		prevText = tok.Text
		prevEnd = tok.End
	}
	return nil
}

func isCloseBracket(text string) bool {
	return text == ")" || text == "]" || text == "}"
}
