package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumberlabs/pep8/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode fsutil.BackupMode
		want string
	}{
		{name: "sidecar mode appends the suffix", mode: fsutil.BackupModeSidecar, want: "/src/tool.py.pep8.bak"},
		{name: "none mode produces no path", mode: fsutil.BackupModeNone, want: ""},
		{name: "unknown mode falls back to sidecar", mode: fsutil.BackupMode("cloud"), want: "/src/tool.py.pep8.bak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fsutil.BackupPath("/src/tool.py", tt.mode); got != tt.want {
				t.Errorf("BackupPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	sidecar := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("saves the original before a rewrite", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "tool.py", []byte("x = 1  \n"), 0644)

		created, err := fsutil.CreateBackup(context.Background(), path, sidecar)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if !created {
			t.Error("expected a new backup")
		}

		got, err := os.ReadFile(fsutil.BackupPath(path, sidecar.Mode))
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "x = 1  \n" {
			t.Errorf("backup content = %q, want %q", got, "x = 1  \n")
		}
	})

	t.Run("never overwrites an earlier backup", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "tool.py", []byte("second run\n"), 0644)
		backupPath := fsutil.BackupPath(path, sidecar.Mode)
		if err := os.WriteFile(backupPath, []byte("first run\n"), 0644); err != nil {
			t.Fatalf("setup backup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path, sidecar)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("expected the existing backup to be kept")
		}

		got, err := os.ReadFile(backupPath)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "first run\n" {
			t.Errorf("backup content = %q, want %q", got, "first run\n")
		}
	})

	t.Run("does nothing when disabled", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "tool.py", []byte("x = 1\n"), 0644)

		created, err := fsutil.CreateBackup(context.Background(), path,
			fsutil.BackupConfig{Enabled: false, Mode: fsutil.BackupModeSidecar})
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("expected no backup when disabled")
		}
		if _, err := os.Stat(fsutil.BackupPath(path, fsutil.BackupModeSidecar)); !os.IsNotExist(err) {
			t.Error("backup should not exist when disabled")
		}
	})

	t.Run("does nothing in none mode", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "tool.py", []byte("x = 1\n"), 0644)

		created, err := fsutil.CreateBackup(context.Background(), path,
			fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeNone})
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("expected no backup in none mode")
		}
	})

	t.Run("missing original means nothing to back up", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gone.py")

		created, err := fsutil.CreateBackup(context.Background(), path, sidecar)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("expected no backup for a missing original")
		}
	})

	t.Run("backup keeps the original's mode", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "tool.py", []byte("x = 1\n"), 0600)

		if _, err := fsutil.CreateBackup(context.Background(), path, sidecar); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}

		stat, err := os.Stat(fsutil.BackupPath(path, sidecar.Mode))
		if err != nil {
			t.Fatalf("stat backup: %v", err)
		}
		if stat.Mode().Perm() != 0600 {
			t.Errorf("backup mode = %o, want %o", stat.Mode().Perm(), 0600)
		}
	})

	t.Run("fails once the context is cancelled", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "tool.py", []byte("x = 1\n"), 0644)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.CreateBackup(ctx, path, sidecar); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
