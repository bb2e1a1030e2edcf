package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentation(t *testing.T) {
	checker := NewIndentation()

	t.Run("four spaces per level", func(t *testing.T) {
		assert.Empty(t, runLogical(t, checker, "if a == 0:\n    a = 1\n"))
	})

	t.Run("odd indent width", func(t *testing.T) {
		diags := runLogical(t, checker, "if a == 0:\n  a = 1\n")
		require.Len(t, diags, 1)
		assertDiag(t, &diags[0], "E111", 2, 0)
	})

	t.Run("expected an indented block", func(t *testing.T) {
		diags := runLogical(t, checker, "for item in items:\npass\n")
		require.Len(t, diags, 1)
		assertDiag(t, &diags[0], "E112", 2, 0)
	})

	t.Run("unexpected indentation", func(t *testing.T) {
		diags := runLogical(t, checker, "a = 1\n    b = 2\n")
		require.Len(t, diags, 1)
		assertDiag(t, &diags[0], "E113", 2, 0)
	})

	t.Run("siblings at the same level", func(t *testing.T) {
		assert.Empty(t, runLogical(t, checker, "a = 1\nb = 2\n"))
	})
}
