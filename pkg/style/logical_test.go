package style_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumberlabs/pep8/pkg/source"
	"github.com/lumberlabs/pep8/pkg/style"
)

func logicalLines(t *testing.T, src string) []*style.LogicalLine {
	t.Helper()
	lines, err := style.LogicalLines(source.NewDocumentFromBytes([]byte(src)))
	require.NoError(t, err)
	return lines
}

func TestLogicalLineReconstruction(t *testing.T) {
	t.Run("single statement", func(t *testing.T) {
		lines := logicalLines(t, "x = 1\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "x = 1", lines[0].Text)
		assert.Equal(t, "x = 1", lines[0].Dedented)
		assert.Equal(t, 1, lines[0].Number)
		assert.Equal(t, 0, lines[0].IndentLevel)
	})

	t.Run("strings are muted", func(t *testing.T) {
		lines := logicalLines(t, "name = 'hello'\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "name = 'xxxxx'", lines[0].Text)
	})

	t.Run("comments are dropped", func(t *testing.T) {
		lines := logicalLines(t, "x = 1  # note\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "x = 1", lines[0].Text)
	})

	t.Run("bracket continuation joins with one space", func(t *testing.T) {
		lines := logicalLines(t, "print spam(ham,\n           eggs)\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "print spam(ham, eggs)", lines[0].Text)
	})

	t.Run("no space after open bracket across rows", func(t *testing.T) {
		lines := logicalLines(t, "spam(\n    ham)\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "spam(ham)", lines[0].Text)
	})

	t.Run("backslash continuation", func(t *testing.T) {
		lines := logicalLines(t, "x = 1 + \\\n    2\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "x = 1 + 2", lines[0].Text)
	})

	t.Run("indentation is preserved and dedented", func(t *testing.T) {
		lines := logicalLines(t, "if a:\n    b = 1\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "    b = 1", lines[1].Text)
		assert.Equal(t, "b = 1", lines[1].Dedented)
		assert.Equal(t, 4, lines[1].IndentLevel)
	})

	t.Run("blank line counters", func(t *testing.T) {
		lines := logicalLines(t, "a = 1\n\n\nb = 2\n")
		require.Len(t, lines, 2)
		assert.Equal(t, 0, lines[0].BlankLinesBefore)
		assert.Equal(t, 2, lines[1].BlankLinesBefore)
	})

	t.Run("comment folds blank run into separate counter", func(t *testing.T) {
		lines := logicalLines(t, "a = 1\n\n\n# note\nb = 2\n")
		require.Len(t, lines, 2)
		assert.Equal(t, 0, lines[1].BlankLinesBefore)
		assert.Equal(t, 2, lines[1].BlankLinesBeforeComment)
	})
}

func TestLogicalLineInvariants(t *testing.T) {
	src := "def spam(ham,\n         eggs='x'):\n    value = ham + 1\n" +
		"    table = {eggs: 2}\n    return value\n\n\nspam(1, eggs='y')\n"
	lines := logicalLines(t, src)
	require.NotEmpty(t, lines)

	for _, line := range lines {
		// No trailing whitespace survives reconstruction; leading text is
		// exactly the computed indentation.
		assert.Equal(t, strings.TrimRight(line.Text, " \t"), line.Text)
		assert.True(t, strings.HasSuffix(line.Text, line.Dedented))
		assert.Equal(t, line.Dedented, strings.TrimLeft(line.Dedented, " \t"))

		prevOffset := -1
		for _, m := range line.Mapping {
			assert.Greater(t, m.Offset, prevOffset, "offsets strictly increase")
			prevOffset = m.Offset

			// Resolving a token's own start offset reproduces its source
			// position exactly.
			row, col := line.ResolveColumn(style.Offset(m.Offset))
			assert.Equal(t, m.Token.Start.Row, row)
			assert.Equal(t, m.Token.Start.Col, col)
		}
	}
}

func TestResolveColumn(t *testing.T) {
	lines := logicalLines(t, "value = spam(ham,\n             eggs)\n")
	require.Len(t, lines, 1)
	line := lines[0]

	t.Run("no column resolves to line start", func(t *testing.T) {
		row, col := line.ResolveColumn(style.NoColumn())
		assert.Equal(t, line.Number, row)
		assert.Equal(t, 0, col)
	})

	t.Run("offset within a token", func(t *testing.T) {
		// "value = spam(ham, eggs)": offset 18 is inside "eggs", which
		// starts at column 13 of row 2.
		row, col := line.ResolveColumn(style.Offset(19))
		assert.Equal(t, 2, row)
		assert.Equal(t, 14, col)
	})

	t.Run("pre-resolved position passes through", func(t *testing.T) {
		row, col := line.ResolveColumn(style.At(7, 3))
		assert.Equal(t, 7, row)
		assert.Equal(t, 3, col)
	})
}

func TestMuteString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"abc"`, `"xxx"`},
		{`'''abc'''`, `'''xxx'''`},
		{`r'abc'`, `r'xxx'`},
		{`u"abc"`, `u"xxx"`},
		{`""`, `""`},
		{`"""ab"""`, `"""xx"""`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := style.MuteString(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.in))
			// Idempotent on already-muted text.
			assert.Equal(t, got, style.MuteString(got))
		})
	}
}

func TestIndentLevelIsPure(t *testing.T) {
	for _, indent := range []string{"", "    ", "\t", "    \t", "       \t", "        \t"} {
		assert.Equal(t, source.IndentLevel(indent), source.IndentLevel(indent), indent)
	}
}
