// Package fsutil writes generated files to disk.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644

	tmpPattern = ".express-mod-tmp-*"
)

// Normalize trims leading and trailing whitespace and appends exactly one newline.
func Normalize(content []byte) []byte {
	trimmed := strings.TrimSpace(string(content))
	return []byte(trimmed + "\n")
}

// EnsureDir creates path and any missing parents. Existing directories are fine.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// WriteFile creates every missing ancestor of path and writes the normalized
// content, replacing any existing file.
func WriteFile(path string, content []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := WriteFileAtomic(path, Normalize(content), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic writes data to path through a temp file and a rename in the
// same directory. On failure the original file, if any, is left unchanged.
// The parent directory must exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), tmpPattern)
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
