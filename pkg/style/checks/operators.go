package checks

import (
	"regexp"

	"github.com/lumberlabs/pep8/pkg/pytokenize"
	"github.com/lumberlabs/pep8/pkg/style"
)

// operatorWhitespaceRegex captures the punctuation on either side of a
// run of whitespace containing a tab or a double space.
var operatorWhitespaceRegex = regexp.MustCompile(`([^\w\s]*)\s*(\t|  )\s*([^\w\s]*)`)

// WhitespaceAroundOperator flags extra whitespace used to align an
// operator with another line.
type WhitespaceAroundOperator struct {
	style.BaseChecker
}

// NewWhitespaceAroundOperator creates the E221-E224 checker.
func NewWhitespaceAroundOperator() *WhitespaceAroundOperator {
	return &WhitespaceAroundOperator{
		BaseChecker: style.NewBaseChecker(
			"whitespace-around-operator",
			"Avoid more than one space around an assignment (or other) "+
				"operator to align it with another.",
			"E221", "E222", "E223", "E224",
		),
	}
}

// Check reports the offending whitespace run. The code depends on which
// side the operator sits and whether the run contains a tab.
func (c *WhitespaceAroundOperator) Check(ctx *style.LogicalContext) *style.Diagnostic {
	text := ctx.Line.Text
	for _, idx := range operatorWhitespaceRegex.FindAllStringSubmatchIndex(text, -1) {
		before := text[idx[2]:idx[3]]
		whitespace := text[idx[4]:idx[5]]
		after := text[idx[6]:idx[7]]
		tab := whitespace == "\t"
		offset := idx[4]
		if isOperator(before) {
			if tab {
				return style.NewDiagnostic("E224", style.Offset(offset))
			}
			return style.NewDiagnostic("E222", style.Offset(offset))
		}
		if isOperator(after) {
			if tab {
				return style.NewDiagnostic("E223", style.Offset(offset))
			}
			return style.NewDiagnostic("E221", style.Offset(offset))
		}
	}
	return nil
}

// MissingWhitespaceAroundOperator flags binary operators that touch an
// operand on either side.
type MissingWhitespaceAroundOperator struct {
	style.BaseChecker
}

// NewMissingWhitespaceAroundOperator creates the E225 checker.
func NewMissingWhitespaceAroundOperator() *MissingWhitespaceAroundOperator {
	return &MissingWhitespaceAroundOperator{
		BaseChecker: style.NewBaseChecker(
			"missing-whitespace-around-operator",
			"Always surround binary operators with a single space on either "+
				"side: assignment, augmented assignment, comparisons, and "+
				"Booleans. Unary signs, argument unpacking, and keyword "+
				"argument '=' are exempt.",
			"E225",
		),
	}
}

// Check walks the statement's token stream tracking paren depth and a
// pending need-space obligation from the previous operator.
func (c *MissingWhitespaceAroundOperator) Check(ctx *style.LogicalContext) *style.Diagnostic {
	parens := 0
	needSpace := false
	prevKind := pytokenize.KindOp
	prevText := ""
	var prevEnd pytokenize.Position
	hasPrev := false

	for _, tok := range ctx.Line.Tokens {
		switch tok.Kind {
		case pytokenize.KindNL, pytokenize.KindNewline, pytokenize.KindError:
			// ERRORTOKEN covers backticks, handled by the deprecation check.
			continue
		}

		text := tok.Text
		if text == "(" || text == "lambda" {
			parens++
		} else if text == ")" {
			parens--
		}

		if needSpace {
			switch {
			case tok.Start != prevEnd:
				needSpace = false
			case text == ">" && prevText == "<":
				// Tolerate the two-token spelling of the '<>' operator.
			default:
				return style.NewDiagnostic("E225", style.At(prevEnd.Row, prevEnd.Col))
			}
		} else if tok.Kind == pytokenize.KindOp && hasPrev {
			if text == "=" && parens > 0 {
				// Keyword args and defaults: foo(bar=None).
			} else if binaryOperators[text] {
				needSpace = true
			} else if unaryOperators[text] {
				// Unary only stays unary after an operator, an opening
				// context, or a keyword: -123, foo(*args), not -5.
				switch prevKind {
				case pytokenize.KindOp:
					if prevText == ")" || prevText == "]" || prevText == "}" {
						needSpace = true
					}
				case pytokenize.KindName:
					if !pythonKeywords[prevText] {
						needSpace = true
					}
				default:
					needSpace = true
				}
			}
			if needSpace && tok.Start == prevEnd {
				return style.NewDiagnostic("E225", style.At(prevEnd.Row, prevEnd.Col))
			}
		}

		prevKind = tok.Kind
		prevText = text
		prevEnd = tok.End
		hasPrev = true
	}
	return nil
}
