package fix_test

import (
	"errors"
	"testing"

	"github.com/lumberlabs/pep8/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	t.Run("valid edits pass", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			{StartOffset: 0, EndOffset: 5, NewText: "a"},
			{StartOffset: 5, EndOffset: 10, NewText: ""},
		}
		if err := fix.ValidateEdits(edits, 10); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("negative start rejected", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{{StartOffset: -1, EndOffset: 2}}
		err := fix.ValidateEdits(edits, 10)

		var verr *fix.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("end before start rejected", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{{StartOffset: 5, EndOffset: 2}}
		if err := fix.ValidateEdits(edits, 10); err == nil {
			t.Error("expected error for inverted range")
		}
	})

	t.Run("end past content rejected", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{{StartOffset: 0, EndOffset: 11}}
		if err := fix.ValidateEdits(edits, 10); err == nil {
			t.Error("expected error for out-of-bounds range")
		}
	})
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	t.Run("sorts out-of-order edits", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			{StartOffset: 8, EndOffset: 9},
			{StartOffset: 0, EndOffset: 2},
		}
		sorted, err := fix.PrepareEdits(edits, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sorted[0].StartOffset != 0 || sorted[1].StartOffset != 8 {
			t.Errorf("edits not sorted: %+v", sorted)
		}
		// Input slice is left untouched.
		if edits[0].StartOffset != 8 {
			t.Error("input slice was mutated")
		}
	})

	t.Run("detects overlapping edits", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			{StartOffset: 0, EndOffset: 5},
			{StartOffset: 3, EndOffset: 8},
		}
		_, err := fix.PrepareEdits(edits, 10)

		var cerr *fix.ConflictError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		t.Parallel()

		sorted, err := fix.PrepareEdits(nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sorted) != 0 {
			t.Errorf("expected no edits, got %d", len(sorted))
		}
	})

	t.Run("touching edits do not conflict", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			{StartOffset: 0, EndOffset: 5},
			{StartOffset: 5, EndOffset: 8},
		}
		if _, err := fix.PrepareEdits(edits, 10); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
