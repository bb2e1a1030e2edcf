package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumberlabs/pep8/pkg/config"
	"github.com/lumberlabs/pep8/pkg/style"
)

// runPhysical analyzes src with only the given physical checker registered.
func runPhysical(t *testing.T, checker style.PhysicalChecker, src string) []style.Diagnostic {
	t.Helper()
	registry := style.NewRegistry()
	registry.RegisterPhysical(checker)
	engine := style.NewEngine(registry, config.NewConfig())
	result, err := engine.CheckSource(context.Background(), []byte(src))
	require.NoError(t, err)
	return result.Diagnostics
}

// runLogical analyzes src with only the given logical checker registered.
func runLogical(t *testing.T, checker style.LogicalChecker, src string) []style.Diagnostic {
	t.Helper()
	registry := style.NewRegistry()
	registry.RegisterLogical(checker)
	engine := style.NewEngine(registry, config.NewConfig())
	result, err := engine.CheckSource(context.Background(), []byte(src))
	require.NoError(t, err)
	return result.Diagnostics
}

// checkStatement runs the checker over a single statement and returns its
// diagnostic, or nil when the statement is clean.
func checkStatement(t *testing.T, checker style.LogicalChecker, statement string) *style.Diagnostic {
	t.Helper()
	diags := runLogical(t, checker, statement+"\n")
	if len(diags) == 0 {
		return nil
	}
	require.Len(t, diags, 1)
	return &diags[0]
}

// assertDiag verifies a diagnostic's code and resolved location.
func assertDiag(t *testing.T, d *style.Diagnostic, code string, row, col int) {
	t.Helper()
	require.NotNil(t, d)
	assert.Equal(t, code, d.Code)
	gotRow, gotCol := d.Location()
	assert.Equal(t, row, gotRow, "row")
	assert.Equal(t, col, gotCol, "column")
}
