package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumberlabs/pep8/internal/cli"
)

// testPythonWithTrailingSpace has trailing whitespace on line 1 (W291).
const testPythonWithTrailingSpace = "x = 1 \ny = 2\n"

// writeTempConfig writes a minimal config so the run is isolated from any
// config files discovered in the environment.
func writeTempConfig(t *testing.T) string {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "pep8.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("max_line_length: 79\n"), 0644))
	return cfgFile
}

func runCheckCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"check", "--config", writeTempConfig(t)}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIntegration_CheckReportsIssues(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(pyFile, []byte(testPythonWithTrailingSpace), 0644))

	stdout, _, err := runCheckCommand(t, pyFile)

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, stdout, "W291")
	assert.Contains(t, stdout, "trailing whitespace")
	assert.Contains(t, stdout, "app.py:1:6")
}

func TestIntegration_CheckCleanFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "clean.py")
	require.NoError(t, os.WriteFile(pyFile, []byte("x = 1\n"), 0644))

	stdout, _, err := runCheckCommand(t, pyFile)

	require.NoError(t, err)
	assert.Contains(t, stdout, "No issues found")
}

func TestIntegration_CheckIgnoreFlag(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(pyFile, []byte(testPythonWithTrailingSpace), 0644))

	stdout, _, err := runCheckCommand(t, pyFile, "--ignore", "W291")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "W291")
}

func TestIntegration_CheckJSONFormat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(pyFile, []byte(testPythonWithTrailingSpace), 0644))

	stdout, _, err := runCheckCommand(t, pyFile, "--format", "json")

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, stdout, `"code": "W291"`)
	assert.Contains(t, stdout, `"summary"`)
}

func TestIntegration_CheckCount(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(pyFile, []byte(testPythonWithTrailingSpace), 0644))

	stdout, _, err := runCheckCommand(t, pyFile, "--count")

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.NotContains(t, stdout, "app.py:1:6")
	assert.Contains(t, stdout, "1\n")
}

func TestIntegration_CheckShowSource(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(pyFile, []byte(testPythonWithTrailingSpace), 0644))

	stdout, _, err := runCheckCommand(t, pyFile, "--show-source")

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, stdout, "x = 1 \n")
	assert.Contains(t, stdout, "^")
}

func TestIntegration_CheckFixDryRun(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(pyFile, []byte(testPythonWithTrailingSpace), 0644))

	_, _, err := runCheckCommand(t, pyFile, "--fix", "--dry-run")
	require.ErrorIs(t, err, cli.ErrIssuesFound)

	// Dry run must not touch the file.
	content, readErr := os.ReadFile(pyFile)
	require.NoError(t, readErr)
	assert.Equal(t, testPythonWithTrailingSpace, string(content))
}

func TestIntegration_CheckDirectoryWalk(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "good.py"), []byte("x = 1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bad.py"), []byte("y = 2 \n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("not python \n"), 0644))

	stdout, _, err := runCheckCommand(t, tmpDir)

	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, stdout, "bad.py")
	assert.NotContains(t, stdout, "notes.txt")
}

func TestIntegration_CheckUnknownFormat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	pyFile := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(pyFile, []byte("x = 1\n"), 0644))

	_, _, err := runCheckCommand(t, pyFile, "--format", "xml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrIssuesFound)
}

func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), ".pep8.yml")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	cmd.SetArgs([]string{"init", "--output", outPath})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "max_line_length")
}

func TestIntegration_InitRefusesOverwrite(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), ".pep8.yml")
	require.NoError(t, os.WriteFile(outPath, []byte("max_line_length: 99\n"), 0644))

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	cmd.SetArgs([]string{"init", "--output", outPath})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	// Stdin is not a terminal under test, so no prompt fires.
	require.Error(t, cmd.Execute())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "max_line_length: 99\n", string(content))
}

func TestIntegration_RulesCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	cmd.SetArgs([]string{"rules"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
}
