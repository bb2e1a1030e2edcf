// Package pytokenize implements a line-driven tokenizer for Python 2 era
// source code. It produces the token stream the style engine consumes:
// names, numbers, operators, strings, comments, and the structural
// NEWLINE/NL/INDENT/DEDENT tokens that delimit logical lines.
//
// The tokenizer is a pull-based iterator. It reads physical lines on
// demand through a caller-supplied callback, which lets the caller run
// per-line work (physical checks) exactly when each line is first needed.
package pytokenize

import "fmt"

// Kind classifies a token.
type Kind uint8

// Token kinds. The structural kinds mirror the classic tokenize stream:
// NEWLINE ends a logical line, NL ends a physical line that does not end
// a statement, and INDENT/DEDENT bracket indentation changes.
const (
	KindEndMarker Kind = iota
	KindName
	KindNumber
	KindString
	KindOp
	KindComment
	KindNewline
	KindNL
	KindIndent
	KindDedent
	KindError
)

// String returns the conventional name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEndMarker:
		return "ENDMARKER"
	case KindName:
		return "NAME"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindOp:
		return "OP"
	case KindComment:
		return "COMMENT"
	case KindNewline:
		return "NEWLINE"
	case KindNL:
		return "NL"
	case KindIndent:
		return "INDENT"
	case KindDedent:
		return "DEDENT"
	case KindError:
		return "ERRORTOKEN"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Position is a 1-based row and 0-based byte column, the coordinate
// convention of the classic tokenize module.
type Position struct {
	Row int
	Col int
}

// String renders the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Token is one lexed token. Tokens are immutable once produced.
type Token struct {
	// Kind classifies the token.
	Kind Kind

	// Text is the exact source text of the token. Structural tokens
	// carry the text of what they stand for: INDENT carries the
	// indentation string, NEWLINE/NL carry the line terminator, and
	// DEDENT/ENDMARKER carry nothing.
	Text string

	// Start and End delimit the token in source coordinates. End is
	// exclusive: End.Col is the column just past the last character.
	Start Position
	End   Position

	// Line is the raw physical line the token was lexed from. For a
	// string spanning several lines it is those lines concatenated.
	Line string
}

// String renders the token for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s-%s", t.Kind, t.Text, t.Start, t.End)
}
