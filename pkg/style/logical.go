package style

import (
	"strings"

	"github.com/lumberlabs/pep8/pkg/pytokenize"
	"github.com/lumberlabs/pep8/pkg/source"
)

// TokenOffset pairs a byte offset in a logical line's normalized text with
// the token whose text begins there. Offsets are strictly increasing.
type TokenOffset struct {
	Offset int
	Token  pytokenize.Token
}

// LogicalLine is one reconstructed statement: possibly several physical
// lines collapsed into a single normalized text, with string contents
// muted, comments dropped, and an offset mapping back to the original
// token coordinates.
type LogicalLine struct {
	// Text is the normalized statement text, including the leading
	// indentation of the statement's first physical line.
	Text string

	// Number is the row at which the statement's NEWLINE token occurred.
	Number int

	// IndentLevel is the expanded width of the leading indentation.
	IndentLevel int

	// Dedented is Text with the leading indentation removed.
	Dedented string

	// BlankLinesBefore counts blank lines since the previous statement.
	BlankLinesBefore int

	// BlankLinesBeforeComment counts blank lines folded away by a
	// standalone comment between statements.
	BlankLinesBeforeComment int

	// Mapping translates offsets in Text back to originating tokens.
	Mapping []TokenOffset

	// Tokens is the token sequence the statement was built from,
	// structural tokens included.
	Tokens []pytokenize.Token
}

// contributes reports whether a token kind adds text to the logical line.
// Structural tokens and comments are bookkeeping only.
func contributes(kind pytokenize.Kind) bool {
	switch kind {
	case pytokenize.KindComment, pytokenize.KindNL, pytokenize.KindNewline,
		pytokenize.KindIndent, pytokenize.KindDedent:
		return false
	default:
		return true
	}
}

// newLogicalLine builds the normalized line for one statement's tokens.
// Returns nil when no token contributes text, which only happens on a
// malformed buffer; callers treat that as "no statement".
func newLogicalLine(tokens []pytokenize.Token, doc *source.Document, blank, blankBeforeComment int) *LogicalLine {
	indent := ""
	for _, tok := range tokens {
		if contributes(tok.Kind) {
			firstLine := doc.Line(tok.Start.Row)
			if tok.Start.Col <= len(firstLine) {
				indent = firstLine[:tok.Start.Col]
			}
			break
		}
	}

	var sb strings.Builder
	sb.WriteString(indent)
	length := len(indent)

	var mapping []TokenOffset
	var prev *pytokenize.Token

	for i := range tokens {
		tok := tokens[i]
		if !contributes(tok.Kind) {
			continue
		}

		text := tok.Text
		if tok.Kind == pytokenize.KindString {
			text = MuteString(text)
		}

		if prev != nil {
			if prev.End.Row != tok.Start.Row {
				// Continuation onto a new row: join with one space, except
				// across an empty bracket pair. A trailing comma always
				// keeps its space.
				if prevChar := lastCharBefore(doc, prev.End); prevChar == ',' ||
					(!isOpenBracketChar(prevChar) && !isCloseBracketText(text)) {
					sb.WriteByte(' ')
					length++
				}
			} else if prev.End.Col != tok.Start.Col {
				// Same row: copy the original whitespace verbatim so the
				// operator-spacing checks see multi-space runs and tabs.
				row := doc.Line(tok.Start.Row)
				if prev.End.Col <= len(row) && tok.Start.Col <= len(row) {
					fill := row[prev.End.Col:tok.Start.Col]
					sb.WriteString(fill)
					length += len(fill)
				}
			}
		}

		mapping = append(mapping, TokenOffset{Offset: length, Token: tok})
		sb.WriteString(text)
		length += len(text)
		prev = &tokens[i]
	}

	if len(mapping) == 0 {
		return nil
	}

	text := sb.String()
	return &LogicalLine{
		Text:                    text,
		IndentLevel:             source.IndentLevel(text),
		Dedented:                text[len(indent):],
		BlankLinesBefore:        blank,
		BlankLinesBeforeComment: blankBeforeComment,
		Mapping:                 mapping,
		Tokens:                  tokens,
	}
}

// lastCharBefore returns the character just before the given position in
// the document, or 0 when out of range.
func lastCharBefore(doc *source.Document, pos pytokenize.Position) byte {
	line := doc.Line(pos.Row)
	if pos.Col < 1 || pos.Col > len(line) {
		return 0
	}
	return line[pos.Col-1]
}

func isOpenBracketChar(c byte) bool {
	return c == '(' || c == '[' || c == '{'
}

// isCloseBracketText mirrors the original join rule: only a bare closing
// bracket suppresses the inserted space.
func isCloseBracketText(text string) bool {
	return text == ")" || text == "]" || text == "}"
}

// ResolveColumn maps a reported column back to the original source
// location. Integer offsets scan the token mapping for the last entry at
// or before the offset, so offsets inside inserted filler resolve to the
// nearest preceding real token.
func (l *LogicalLine) ResolveColumn(c Column) (int, int) {
	switch c.kind {
	case columnAt:
		return c.row, c.col
	case columnOffset:
		row, col := l.Number, c.offset
		if len(l.Mapping) > 0 {
			// Offsets inside the leading indentation anchor to the first
			// token's row.
			row = l.Mapping[0].Token.Start.Row
		}
		for _, m := range l.Mapping {
			if m.Offset > c.offset {
				break
			}
			row = m.Token.Start.Row
			col = m.Token.Start.Col + (c.offset - m.Offset)
		}
		return row, col
	default:
		return l.Number, 0
	}
}

// MuteString replaces a string literal's contents with a same-length run
// of 'x', preserving prefixes and quote characters. Idempotent: muting a
// muted literal changes nothing.
func MuteString(text string) string {
	start := 1
	end := len(text) - 1
	if strings.HasSuffix(text, `"`) {
		start += strings.Index(text, `"`)
	} else if strings.HasSuffix(text, "'") {
		start += strings.Index(text, "'")
	}
	if strings.HasSuffix(text, `"""`) || strings.HasSuffix(text, "'''") {
		start += 2
		end -= 2
	}
	if start > end {
		return text
	}
	return text[:start] + strings.Repeat("x", end-start) + text[end:]
}
