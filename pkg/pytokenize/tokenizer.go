package pytokenize

import (
	"errors"
	"strings"
)

// ReadLine returns the next physical line including its terminator, or ""
// once the input is exhausted. Physical lines are never empty strings, so
// "" unambiguously signals end of input.
type ReadLine func() string

// Errors reported for token streams that end mid-construct. These indicate
// truncated or malformed input, not style violations.
var (
	ErrUnterminatedString    = errors.New("pytokenize: end of input inside multi-line string")
	ErrUnterminatedStatement = errors.New("pytokenize: end of input inside multi-line statement")
)

// Tokenizer is a pull-based lexer over physical lines. Each call to Next
// returns the next token; lines are requested from the ReadLine callback
// only when needed, so per-line side effects in the callback run exactly
// when each line is first consumed.
type Tokenizer struct {
	readLine ReadLine

	line string // current physical line, terminator included
	row  int    // 1-based row of the current line
	pos  int    // byte offset into line

	pending []Token
	indents []int
	depth   int // bracket nesting

	continued bool // previous line ended with a backslash

	// Open multi-line string state.
	strOpen  bool
	strDelim string
	strStart Position
	strText  strings.Builder
	strLines strings.Builder

	finished bool
}

// New creates a Tokenizer that pulls physical lines from readLine.
func New(readLine ReadLine) *Tokenizer {
	return &Tokenizer{
		readLine: readLine,
		indents:  []int{0},
	}
}

// Next returns the next token in the stream. After the ENDMARKER token has
// been returned, further calls keep returning ENDMARKER.
func (t *Tokenizer) Next() (Token, error) {
	for len(t.pending) == 0 {
		if err := t.advance(); err != nil {
			return Token{}, err
		}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// advance consumes input until at least one token is queued.
func (t *Tokenizer) advance() error {
	if t.finished {
		t.emit(KindEndMarker, "", Position{t.row + 1, 0}, Position{t.row + 1, 0}, "")
		return nil
	}

	if t.strOpen {
		return t.continueString()
	}

	if t.pos < len(t.line) {
		t.lexRestOfLine()
		return nil
	}

	// Need a fresh line.
	switch {
	case t.continued:
		if !t.nextLine() {
			return ErrUnterminatedStatement
		}
		t.continued = false
		t.lexRestOfLine()
		return nil

	case t.depth > 0:
		if !t.nextLine() {
			return ErrUnterminatedStatement
		}
		t.lexRestOfLine()
		return nil

	default:
		return t.startLine()
	}
}

// startLine reads a line at statement level: it measures indentation,
// recognizes blank and comment-only lines, and emits INDENT/DEDENT tokens
// before handing the rest of the line to the ordinary lexer.
func (t *Tokenizer) startLine() error {
	if !t.nextLine() {
		for len(t.indents) > 1 {
			t.indents = t.indents[:len(t.indents)-1]
			t.emit(KindDedent, "", Position{t.row + 1, 0}, Position{t.row + 1, 0}, "")
		}
		t.finished = true
		t.emit(KindEndMarker, "", Position{t.row + 1, 0}, Position{t.row + 1, 0}, "")
		return nil
	}

	col := 0
	for t.pos < len(t.line) {
		switch t.line[t.pos] {
		case ' ':
			col++
		case '\t':
			col = col/tabSize*tabSize + tabSize
		case '\x0c':
			col = 0
		default:
			goto measured
		}
		t.pos++
	}
measured:

	// Blank and comment-only lines do not affect the indentation stack.
	if t.pos >= len(t.line) || t.line[t.pos] == '\r' || t.line[t.pos] == '\n' || t.line[t.pos] == '#' {
		if t.pos < len(t.line) && t.line[t.pos] == '#' {
			t.lexComment()
		}
		start := t.pos
		t.pos = len(t.line)
		t.emit(KindNL, t.line[start:], Position{t.row, start}, Position{t.row, len(t.line)}, t.line)
		return nil
	}

	top := t.indents[len(t.indents)-1]
	if col > top {
		t.indents = append(t.indents, col)
		t.emit(KindIndent, t.line[:t.pos], Position{t.row, 0}, Position{t.row, t.pos}, t.line)
	}
	for col < t.indents[len(t.indents)-1] {
		t.indents = t.indents[:len(t.indents)-1]
		t.emit(KindDedent, "", Position{t.row, t.pos}, Position{t.row, t.pos}, t.line)
	}

	t.lexRestOfLine()
	return nil
}

// lexRestOfLine tokenizes from the current position to the end of the
// current line, stopping early when a multi-line string opens or a
// backslash continuation is found.
func (t *Tokenizer) lexRestOfLine() {
	for t.pos < len(t.line) {
		c := t.line[t.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\x0c':
			t.pos++

		case c == '\r' || c == '\n':
			t.emitLineEnd(t.pos)
			return

		case c == '#':
			t.lexComment()

		case c == '\\' && t.restIsTerminator(t.pos+1):
			t.continued = true
			t.pos = len(t.line)
			return

		case c == '"' || c == '\'':
			if !t.lexString(t.pos) {
				return // multi-line string opened
			}

		case isNameStart(c):
			if !t.lexNameOrPrefixedString() {
				return
			}

		case isDigit(c) || (c == '.' && t.pos+1 < len(t.line) && isDigit(t.line[t.pos+1])):
			t.lexNumber()

		default:
			t.lexOperator()
		}
	}

	// Line ended without a terminator: the file's last line. Emit the
	// structural token with empty text so downstream bookkeeping still
	// sees a statement boundary.
	t.emitLineEnd(t.pos)
}

// emitLineEnd emits the NEWLINE or NL token covering the terminator that
// begins at start. Inside brackets a line break never ends the statement.
func (t *Tokenizer) emitLineEnd(start int) {
	kind := KindNewline
	if t.depth > 0 {
		kind = KindNL
	}
	t.emit(kind, t.line[start:], Position{t.row, start}, Position{t.row, len(t.line)}, t.line)
	t.pos = len(t.line)
}

// lexComment consumes a comment running to the end of the line. The token
// text excludes the line terminator.
func (t *Tokenizer) lexComment() {
	start := t.pos
	end := len(t.line)
	for end > start && (t.line[end-1] == '\n' || t.line[end-1] == '\r') {
		end--
	}
	t.pos = end
	t.emit(KindComment, t.line[start:end], Position{t.row, start}, Position{t.row, end}, t.line)
}

// lexNameOrPrefixedString lexes an identifier, keyword, or string prefix.
// Returns false when a prefixed multi-line string opened.
func (t *Tokenizer) lexNameOrPrefixedString() bool {
	start := t.pos
	for t.pos < len(t.line) && isNameChar(t.line[t.pos]) {
		t.pos++
	}
	name := t.line[start:t.pos]

	if isStringPrefix(name) && t.pos < len(t.line) && (t.line[t.pos] == '"' || t.line[t.pos] == '\'') {
		t.pos = start
		return t.lexString(start)
	}

	t.emit(KindName, name, Position{t.row, start}, Position{t.row, t.pos}, t.line)
	return true
}

// lexString lexes a string literal starting at start (at its prefix, if
// any). Returns false when the literal is triple-quoted and does not close
// on this line; the tokenizer then accumulates lines until it closes.
func (t *Tokenizer) lexString(start int) bool {
	pos := start
	for pos < len(t.line) && t.line[pos] != '"' && t.line[pos] != '\'' {
		pos++ // skip prefix letters, validated by the caller
	}
	quote := t.line[pos]

	delim := string(quote)
	if pos+2 < len(t.line) && t.line[pos+1] == quote && t.line[pos+2] == quote {
		delim = strings.Repeat(string(quote), 3)
	}
	body := pos + len(delim)

	if end, ok := findStringEnd(t.line, body, delim); ok {
		t.emit(KindString, t.line[start:end], Position{t.row, start}, Position{t.row, end}, t.line)
		t.pos = end
		return true
	}

	if len(delim) == 3 || strings.HasSuffix(strings.TrimRight(t.line, "\r\n"), "\\") {
		// Open multi-line string: triple-quoted, or single-quoted with a
		// backslash continuation before the terminator.
		t.strOpen = true
		t.strDelim = delim
		t.strStart = Position{t.row, start}
		t.strText.Reset()
		t.strText.WriteString(t.line[start:])
		t.strLines.Reset()
		t.strLines.WriteString(t.line)
		t.pos = len(t.line)
		return false
	}

	// Unterminated single-quoted string: surface the quote character as an
	// error token and keep lexing, the way legacy syntax is tolerated.
	t.emit(KindError, string(quote), Position{t.row, pos}, Position{t.row, pos + 1}, t.line)
	t.pos = pos + 1
	return true
}

// continueString accumulates lines into an open multi-line string until
// its closing delimiter is found.
func (t *Tokenizer) continueString() error {
	if !t.nextLine() {
		return ErrUnterminatedString
	}
	if end, ok := findStringEnd(t.line, 0, t.strDelim); ok {
		t.strText.WriteString(t.line[:end])
		t.strLines.WriteString(t.line)
		t.strOpen = false
		t.emit(KindString, t.strText.String(), t.strStart, Position{t.row, end}, t.strLines.String())
		t.pos = end
		return nil
	}
	t.strText.WriteString(t.line)
	t.strLines.WriteString(t.line)
	t.pos = len(t.line)
	return nil
}

// findStringEnd scans for the closing delimiter from pos, honoring
// backslash escapes. Returns the offset just past the delimiter.
func findStringEnd(line string, pos int, delim string) (int, bool) {
	for pos < len(line) {
		switch {
		case line[pos] == '\\':
			pos += 2
		case strings.HasPrefix(line[pos:], delim):
			return pos + len(delim), true
		case len(delim) == 1 && (line[pos] == '\n' || line[pos] == '\r'):
			return 0, false
		default:
			pos++
		}
	}
	return 0, false
}

// lexNumber consumes a numeric literal: integers with radix prefixes,
// floats, exponents, and the legacy L/j suffixes.
func (t *Tokenizer) lexNumber() {
	start := t.pos

	if t.line[t.pos] == '0' && t.pos+1 < len(t.line) &&
		(t.line[t.pos+1] == 'x' || t.line[t.pos+1] == 'X') {
		t.pos += 2
		for t.pos < len(t.line) && isHexDigit(t.line[t.pos]) {
			t.pos++
		}
	} else {
		for t.pos < len(t.line) && isDigit(t.line[t.pos]) {
			t.pos++
		}
		if t.pos < len(t.line) && t.line[t.pos] == '.' {
			t.pos++
			for t.pos < len(t.line) && isDigit(t.line[t.pos]) {
				t.pos++
			}
		}
		if t.pos < len(t.line) && (t.line[t.pos] == 'e' || t.line[t.pos] == 'E') {
			next := t.pos + 1
			if next < len(t.line) && (t.line[next] == '+' || t.line[next] == '-') {
				next++
			}
			if next < len(t.line) && isDigit(t.line[next]) {
				t.pos = next
				for t.pos < len(t.line) && isDigit(t.line[t.pos]) {
					t.pos++
				}
			}
		}
	}

	for t.pos < len(t.line) && (t.line[t.pos] == 'l' || t.line[t.pos] == 'L' ||
		t.line[t.pos] == 'j' || t.line[t.pos] == 'J') {
		t.pos++
	}

	t.emit(KindNumber, t.line[start:t.pos], Position{t.row, start}, Position{t.row, t.pos}, t.line)
}

// operatorTexts is ordered longest-first so multi-character operators win.
var operatorTexts = []string{
	"**=", "//=", "<<=", ">>=",
	"**", "//", "<<", ">>", "<=", ">=", "==", "!=", "<>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">",
	"(", ")", "[", "]", "{", "}", ",", ":", ".", ";", "@", "=",
}

// lexOperator matches the longest operator at the current position. Any
// other character, backticks included, becomes an error token that flows
// through to the deprecation checks.
func (t *Tokenizer) lexOperator() {
	rest := t.line[t.pos:]
	for _, op := range operatorTexts {
		if strings.HasPrefix(rest, op) {
			start := t.pos
			t.pos += len(op)
			switch op {
			case "(", "[", "{":
				t.depth++
			case ")", "]", "}":
				t.depth--
			}
			t.emit(KindOp, op, Position{t.row, start}, Position{t.row, t.pos}, t.line)
			return
		}
	}

	start := t.pos
	t.pos++
	t.emit(KindError, t.line[start:t.pos], Position{t.row, start}, Position{t.row, t.pos}, t.line)
}

// nextLine pulls the next physical line. Returns false at end of input.
func (t *Tokenizer) nextLine() bool {
	line := t.readLine()
	if line == "" {
		return false
	}
	t.line = line
	t.row++
	t.pos = 0
	return true
}

// restIsTerminator reports whether everything from pos on is the line
// terminator, making a backslash at pos-1 a line continuation.
func (t *Tokenizer) restIsTerminator(pos int) bool {
	for ; pos < len(t.line); pos++ {
		if t.line[pos] != '\r' && t.line[pos] != '\n' {
			return false
		}
	}
	return true
}

func (t *Tokenizer) emit(kind Kind, text string, start, end Position, line string) {
	t.pending = append(t.pending, Token{
		Kind:  kind,
		Text:  text,
		Start: start,
		End:   end,
		Line:  line,
	})
}

const tabSize = 8

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isStringPrefix reports whether name is a legal string literal prefix
// such as r, u, b, ur, or br, in any case.
func isStringPrefix(name string) bool {
	switch strings.ToLower(name) {
	case "r", "u", "b", "ur", "br":
		return true
	default:
		return false
	}
}
