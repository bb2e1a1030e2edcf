package pytokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readerFor returns a ReadLine over the given physical lines.
func readerFor(lines ...string) ReadLine {
	i := 0
	return func() string {
		if i >= len(lines) {
			return ""
		}
		line := lines[i]
		i++
		return line
	}
}

// collect drains the tokenizer up to and including ENDMARKER.
func collect(t *testing.T, lines ...string) []Token {
	t.Helper()
	tok := New(readerFor(lines...))
	var out []Token
	for {
		token, err := tok.Next()
		require.NoError(t, err)
		out = append(out, token)
		if token.Kind == KindEndMarker {
			return out
		}
	}
}

// kindsOf extracts just the token kinds for shape assertions.
func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenizeSimpleStatement(t *testing.T) {
	tokens := collect(t, "x = 1\n")

	require.Equal(t, []Kind{KindName, KindOp, KindNumber, KindNewline, KindEndMarker}, kindsOf(tokens))

	assert.Equal(t, "x", tokens[0].Text)
	assert.Equal(t, Position{1, 0}, tokens[0].Start)
	assert.Equal(t, Position{1, 1}, tokens[0].End)

	assert.Equal(t, "=", tokens[1].Text)
	assert.Equal(t, Position{1, 2}, tokens[1].Start)

	assert.Equal(t, "1", tokens[2].Text)
	assert.Equal(t, Position{1, 4}, tokens[2].Start)

	assert.Equal(t, "\n", tokens[3].Text)
	assert.Equal(t, "x = 1\n", tokens[3].Line)
}

func TestTokenizeIndentDedent(t *testing.T) {
	tokens := collect(t,
		"if a:\n",
		"    b = 1\n",
		"c = 2\n",
	)

	require.Equal(t, []Kind{
		KindName, KindName, KindOp, KindNewline,
		KindIndent, KindName, KindOp, KindNumber, KindNewline,
		KindDedent, KindName, KindOp, KindNumber, KindNewline,
		KindEndMarker,
	}, kindsOf(tokens))

	indent := tokens[4]
	assert.Equal(t, "    ", indent.Text)
	assert.Equal(t, Position{2, 0}, indent.Start)
}

func TestTokenizeBlankAndCommentLines(t *testing.T) {
	tokens := collect(t,
		"a = 1\n",
		"\n",
		"# standalone\n",
		"b = 2\n",
	)

	require.Equal(t, []Kind{
		KindName, KindOp, KindNumber, KindNewline,
		KindNL,
		KindComment, KindNL,
		KindName, KindOp, KindNumber, KindNewline,
		KindEndMarker,
	}, kindsOf(tokens))

	comment := tokens[5]
	assert.Equal(t, "# standalone", comment.Text)
	assert.Equal(t, Position{3, 0}, comment.Start)
}

func TestTokenizeInlineComment(t *testing.T) {
	tokens := collect(t, "x = 1  # note\n")

	require.Equal(t, []Kind{
		KindName, KindOp, KindNumber, KindComment, KindNewline, KindEndMarker,
	}, kindsOf(tokens))
	assert.Equal(t, "# note", tokens[3].Text)
	assert.Equal(t, Position{1, 7}, tokens[3].Start)
}

func TestTokenizeBracketContinuation(t *testing.T) {
	tokens := collect(t,
		"a = (1,\n",
		"     2)\n",
	)

	require.Equal(t, []Kind{
		KindName, KindOp, KindOp, KindNumber, KindOp, KindNL,
		KindNumber, KindOp, KindNewline,
		KindEndMarker,
	}, kindsOf(tokens))

	// The continuation line produces neither INDENT nor a second NEWLINE.
	assert.Equal(t, Position{2, 5}, tokens[6].Start)
	assert.Equal(t, "2", tokens[6].Text)
}

func TestTokenizeBackslashContinuation(t *testing.T) {
	tokens := collect(t,
		"a = 1 + \\\n",
		"    2\n",
	)

	require.Equal(t, []Kind{
		KindName, KindOp, KindNumber, KindOp, KindNumber, KindNewline, KindEndMarker,
	}, kindsOf(tokens))
	assert.Equal(t, Position{2, 4}, tokens[4].Start)
}

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		name string
		line string
		text string
	}{
		{"double quoted", "x = \"abc\"\n", "\"abc\""},
		{"single quoted", "x = 'abc'\n", "'abc'"},
		{"raw prefix", "x = r'a\\b'\n", "r'a\\b'"},
		{"unicode raw prefix", "x = ur'abc'\n", "ur'abc'"},
		{"triple quoted one line", "x = '''abc'''\n", "'''abc'''"},
		{"escaped quote", "x = 'a\\'b'\n", "'a\\'b'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := collect(t, tt.line)
			require.Equal(t, []Kind{KindName, KindOp, KindString, KindNewline, KindEndMarker}, kindsOf(tokens))
			assert.Equal(t, tt.text, tokens[2].Text)
		})
	}
}

func TestTokenizeMultilineString(t *testing.T) {
	tokens := collect(t,
		"x = '''abc\n",
		"def'''\n",
	)

	require.Equal(t, []Kind{KindName, KindOp, KindString, KindNewline, KindEndMarker}, kindsOf(tokens))

	str := tokens[2]
	assert.Equal(t, "'''abc\ndef'''", str.Text)
	assert.Equal(t, Position{1, 4}, str.Start)
	assert.Equal(t, Position{2, 6}, str.End)
	assert.Equal(t, "x = '''abc\ndef'''\n", str.Line)
}

func TestTokenizeUnterminatedMultilineString(t *testing.T) {
	tok := New(readerFor("x = '''abc\n"))
	for {
		token, err := tok.Next()
		if err != nil {
			assert.ErrorIs(t, err, ErrUnterminatedString)
			return
		}
		require.NotEqual(t, KindEndMarker, token.Kind, "expected an error before ENDMARKER")
	}
}

func TestTokenizeUnterminatedBracket(t *testing.T) {
	tok := New(readerFor("x = (1,\n"))
	for {
		token, err := tok.Next()
		if err != nil {
			assert.ErrorIs(t, err, ErrUnterminatedStatement)
			return
		}
		require.NotEqual(t, KindEndMarker, token.Kind, "expected an error before ENDMARKER")
	}
}

func TestTokenizeOperators(t *testing.T) {
	tokens := collect(t, "a **= b <> c != d\n")

	var ops []string
	for _, tok := range tokens {
		if tok.Kind == KindOp {
			ops = append(ops, tok.Text)
		}
	}
	assert.Equal(t, []string{"**=", "<>", "!="}, ops)
}

func TestTokenizeBacktickIsErrorToken(t *testing.T) {
	tokens := collect(t, "print `x`\n")

	require.Equal(t, []Kind{
		KindName, KindError, KindName, KindError, KindNewline, KindEndMarker,
	}, kindsOf(tokens))
	assert.Equal(t, "`", tokens[1].Text)
	assert.Equal(t, Position{1, 6}, tokens[1].Start)
}

func TestTokenizeMissingFinalNewline(t *testing.T) {
	tokens := collect(t, "x = 1")

	require.Equal(t, []Kind{KindName, KindOp, KindNumber, KindNewline, KindEndMarker}, kindsOf(tokens))
	assert.Equal(t, "", tokens[3].Text)
	assert.Equal(t, Position{1, 5}, tokens[3].Start)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		line string
		text string
	}{
		{"x = 42\n", "42"},
		{"x = 0x1f\n", "0x1f"},
		{"x = 3.14\n", "3.14"},
		{"x = 1e10\n", "1e10"},
		{"x = 2.5e-3\n", "2.5e-3"},
		{"x = 10L\n", "10L"},
		{"x = 2j\n", "2j"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tokens := collect(t, tt.line)
			require.Equal(t, []Kind{KindName, KindOp, KindNumber, KindNewline, KindEndMarker}, kindsOf(tokens))
			assert.Equal(t, tt.text, tokens[2].Text)
		})
	}
}

func TestTokenizeTabIndentation(t *testing.T) {
	tokens := collect(t,
		"if a:\n",
		"\tb = 1\n",
	)

	require.Equal(t, []Kind{
		KindName, KindName, KindOp, KindNewline,
		KindIndent, KindName, KindOp, KindNumber, KindNewline,
		KindDedent, KindEndMarker,
	}, kindsOf(tokens))
	assert.Equal(t, "\t", tokens[4].Text)
}

func TestTokenizeDecorator(t *testing.T) {
	tokens := collect(t,
		"@wraps\n",
		"def f():\n",
		"    pass\n",
	)

	require.Equal(t, KindOp, tokens[0].Kind)
	assert.Equal(t, "@", tokens[0].Text)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NAME", KindName.String())
	assert.Equal(t, "NEWLINE", KindNewline.String())
	assert.Equal(t, "ERRORTOKEN", KindError.String())
}
