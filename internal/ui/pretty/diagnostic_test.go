package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumberlabs/pep8/pkg/analysis"
)

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	entry := &analysis.DiagnosticEntry{
		FilePath: "app.py",
		Code:     "E201",
		Severity: analysis.SeverityError,
		Message:  "whitespace after '('",
		Row:      3,
		Column:   7,
	}

	assert.Equal(t, "app.py:3:7: E201 whitespace after '('\n", s.FormatDiagnostic(entry))
}

func TestFormatSourceContext(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)

	t.Run("caret under column", func(t *testing.T) {
		t.Parallel()

		out := s.FormatSourceContext("spam( ham)\n", 6)
		assert.Equal(t, "spam( ham)\n     ^\n", out)
	})

	t.Run("tabs preserved in caret line", func(t *testing.T) {
		t.Parallel()

		out := s.FormatSourceContext("\tx =1\n", 5)
		assert.Equal(t, "\tx =1\n\t   ^\n", out)
	})

	t.Run("no caret for column zero", func(t *testing.T) {
		t.Parallel()

		out := s.FormatSourceContext("import os\n", 0)
		assert.Equal(t, "import os\n", out)
	})
}

func TestFormatRuleProse(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)

	out := s.FormatRuleProse("Avoid extraneous whitespace.\nUse it sparingly.\n")
	assert.Equal(t, "    Avoid extraneous whitespace.\n    Use it sparingly.\n", out)

	assert.Empty(t, s.FormatRuleProse(""))
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)

	assert.Equal(t, "app.py (3 issues)", s.FormatFileHeader("app.py", 3))
	assert.Equal(t, "app.py", s.FormatFileHeader("app.py", 0))
}
