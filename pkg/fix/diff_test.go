package fix_test

import (
	"strings"
	"testing"

	"github.com/lumberlabs/pep8/pkg/fix"
)

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	t.Run("identical content yields no diff", func(t *testing.T) {
		t.Parallel()

		content := []byte("x = 1\ny = 2\n")
		if diff := fix.GenerateDiff("tool.py", content, content); diff != nil {
			t.Error("expected nil diff for identical content")
		}
		if diff := fix.GenerateDiff("tool.py", nil, nil); diff != nil {
			t.Error("expected nil diff for empty inputs")
		}
	})

	t.Run("stripped trailing whitespace shows as remove plus add", func(t *testing.T) {
		t.Parallel()

		original := []byte("x = 1  \ny = 2\n")
		modified := []byte("x = 1\ny = 2\n")

		diff := fix.GenerateDiff("tool.py", original, modified)
		if diff == nil {
			t.Fatal("expected a diff")
		}
		if !diff.HasChanges() {
			t.Error("HasChanges() = false, want true")
		}
		if diff.Additions != 1 || diff.Deletions != 1 {
			t.Errorf("Additions, Deletions = %d, %d, want 1, 1", diff.Additions, diff.Deletions)
		}

		out := diff.String()
		if !strings.Contains(out, "-x = 1  \n") {
			t.Errorf("diff missing removed line:\n%s", out)
		}
		if !strings.Contains(out, "+x = 1\n") {
			t.Errorf("diff missing added line:\n%s", out)
		}
	})

	t.Run("appended final newline is visible", func(t *testing.T) {
		t.Parallel()

		original := []byte("x = 1\ny = 2")
		modified := []byte("x = 1\ny = 2\n")

		diff := fix.GenerateDiff("tool.py", original, modified)
		if diff == nil {
			t.Fatal("expected a diff")
		}

		out := diff.String()
		if !strings.Contains(out, "-y = 2\n\\ No newline at end of file\n") {
			t.Errorf("diff missing no-newline marker on the removed side:\n%s", out)
		}
		if !strings.Contains(out, "+y = 2\n") {
			t.Errorf("diff missing added line:\n%s", out)
		}
	})

	t.Run("unchanged neighbors appear as context", func(t *testing.T) {
		t.Parallel()

		original := []byte("a = 1\nb = 2\nc = 3  \nd = 4\ne = 5\n")
		modified := []byte("a = 1\nb = 2\nc = 3\nd = 4\ne = 5\n")

		diff := fix.GenerateDiff("tool.py", original, modified)
		if diff == nil || len(diff.Hunks) != 1 {
			t.Fatalf("expected one hunk, got %+v", diff)
		}

		var ctx, removed, added int
		for _, line := range diff.Hunks[0].Lines {
			switch line.Kind {
			case fix.LineContext:
				ctx++
			case fix.LineRemoved:
				removed++
			case fix.LineAdded:
				added++
			}
		}
		if ctx != 4 || removed != 1 || added != 1 {
			t.Errorf("context, removed, added = %d, %d, %d, want 4, 1, 1", ctx, removed, added)
		}
	})

	t.Run("distant changes produce separate hunks", func(t *testing.T) {
		t.Parallel()

		lines := make([]string, 20)
		for i := range lines {
			lines[i] = "v = " + string(rune('a'+i))
		}
		original := append([]string(nil), lines...)
		original[1] += "  "
		original[17] += "\t"

		diff := fix.GenerateDiff("tool.py",
			[]byte(strings.Join(original, "\n")+"\n"),
			[]byte(strings.Join(lines, "\n")+"\n"))

		if diff == nil {
			t.Fatal("expected a diff")
		}
		if len(diff.Hunks) != 2 {
			t.Fatalf("expected 2 hunks, got %d", len(diff.Hunks))
		}
		if diff.Hunks[0].OldStart != 1 {
			t.Errorf("first hunk OldStart = %d, want 1", diff.Hunks[0].OldStart)
		}
		if diff.Hunks[1].OldStart != 15 {
			t.Errorf("second hunk OldStart = %d, want 15", diff.Hunks[1].OldStart)
		}
	})

	t.Run("nearby changes merge into one hunk", func(t *testing.T) {
		t.Parallel()

		original := []byte("a = 1 \nb = 2\nc = 3\nd = 4 \ne = 5\n")
		modified := []byte("a = 1\nb = 2\nc = 3\nd = 4\ne = 5\n")

		diff := fix.GenerateDiff("tool.py", original, modified)
		if diff == nil {
			t.Fatal("expected a diff")
		}
		if len(diff.Hunks) != 1 {
			t.Errorf("expected 1 merged hunk, got %d", len(diff.Hunks))
		}
	})

	t.Run("hunk counts cover both sides", func(t *testing.T) {
		t.Parallel()

		original := []byte("x = 1 \ny = 2\t\nz = 3  \n")
		modified := []byte("x = 1\ny = 2\nz = 3\n")

		diff := fix.GenerateDiff("tool.py", original, modified)
		if diff == nil || len(diff.Hunks) != 1 {
			t.Fatalf("expected one hunk, got %+v", diff)
		}

		hunk := diff.Hunks[0]
		if hunk.OldCount != 3 || hunk.NewCount != 3 {
			t.Errorf("OldCount, NewCount = %d, %d, want 3, 3", hunk.OldCount, hunk.NewCount)
		}
		if diff.Deletions != 3 || diff.Additions != 3 {
			t.Errorf("Deletions, Additions = %d, %d, want 3, 3", diff.Deletions, diff.Additions)
		}
	})
}

func TestDiff_String(t *testing.T) {
	t.Parallel()

	t.Run("nil and empty diffs render as nothing", func(t *testing.T) {
		t.Parallel()

		var nilDiff *fix.Diff
		if nilDiff.String() != "" {
			t.Error("expected empty string for nil diff")
		}
		if nilDiff.HasChanges() {
			t.Error("expected HasChanges() = false for nil diff")
		}

		empty := &fix.Diff{Path: "tool.py"}
		if empty.String() != "" {
			t.Error("expected empty string for diff without hunks")
		}
	})

	t.Run("renders unified headers and hunk markers", func(t *testing.T) {
		t.Parallel()

		original := []byte("x = 1 \n")
		modified := []byte("x = 1\n")

		out := fix.GenerateDiff("src/tool.py", original, modified).String()

		if !strings.HasPrefix(out, "--- a/src/tool.py\n+++ b/src/tool.py\n") {
			t.Errorf("missing file headers:\n%s", out)
		}
		if !strings.Contains(out, "@@ -1,1 +1,1 @@\n") {
			t.Errorf("missing hunk header:\n%s", out)
		}
	})

	t.Run("leading slash is dropped from the header paths", func(t *testing.T) {
		t.Parallel()

		out := fix.GenerateDiff("/src/tool.py", []byte("x = 1 \n"), []byte("x = 1\n")).String()
		if !strings.Contains(out, "--- a/src/tool.py\n") {
			t.Errorf("expected rootless header path:\n%s", out)
		}
	})
}
