package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BackupMode selects where a pre-fix backup goes.
type BackupMode string

const (
	// BackupModeSidecar writes the backup next to the original file.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// BackupSuffix is appended to the original path in sidecar mode.
const BackupSuffix = ".pep8.bak"

// BackupConfig controls backup behavior for the fix pass.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode
}

// BackupPath returns where the backup for path lives, or "" when the
// mode produces none. Unrecognized modes fall back to sidecar.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup saves the current content of path before the fix pass
// rewrites it. The backup is created exclusively, so the first run's
// copy of the original survives any number of later runs. Returns
// true only when a new backup was written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}
	backupPath := BackupPath(path, cfg.Mode)
	if backupPath == "" {
		return false, nil
	}

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	content, stat, err := readForBackup(path)
	if err != nil || stat == nil {
		return false, err
	}

	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, stat.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			// A previous run already saved the original.
			return false, nil
		}
		return false, fmt.Errorf("create backup file: %w", err)
	}

	if _, err := dst.Write(content); err != nil {
		_ = dst.Close()
		_ = os.Remove(backupPath)
		return false, fmt.Errorf("write backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(backupPath)
		return false, fmt.Errorf("close backup: %w", err)
	}
	return true, nil
}

// readForBackup returns the original's content and stat, or (nil, nil,
// nil) when there is nothing to back up.
func readForBackup(path string) ([]byte, os.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("stat original for backup: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read original for backup: %w", err)
	}
	return content, stat, nil
}
