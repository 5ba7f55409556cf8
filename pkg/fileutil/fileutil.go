// =============================================================================
// CBI Payment Export - File Utilities
// =============================================================================
//
// Shared helpers for the export pipeline's file handling: discovering input
// files, writing output documents under unique names, and archiving
// processed inputs. Archival never overwrites: on a name collision the
// moved file gets a numeric suffix.
//
// =============================================================================

package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiscoverInputs returns the paths of the supported input files (.csv,
// .xlsx) directly inside dir, sorted by name. Subdirectories are not
// descended into.
func DiscoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx":
			inputs = append(inputs, filepath.Join(dir, entry.Name()))
		}
	}

	return inputs, nil
}

// EnsureDir creates dir (and any missing parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteOutput writes data into dir under a unique UUID-based file name and
// returns the full path of the written file.
func WriteOutput(dir string, data []byte) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, uuid.NewString()+".xml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return path, nil
}

// ArchiveFile moves path into archiveDir, keeping the base name. When a
// file with the same name already exists in the archive, a numeric suffix
// is appended before the extension.
func ArchiveFile(path, archiveDir string) error {
	if err := EnsureDir(archiveDir); err != nil {
		return err
	}

	target := filepath.Join(archiveDir, filepath.Base(path))
	target = uniquePath(target)

	if err := os.Rename(path, target); err != nil {
		return fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return nil
}

// uniquePath returns path itself when unused, otherwise the first
// "name_N.ext" variant that does not exist yet.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
