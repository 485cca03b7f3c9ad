// Package project answers the two questions asked before anything is
// written: does a create target already exist, and is a directory the root
// of a generated project.
package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/expressmod/cli/internal/templates"
)

// TargetExists reports whether anything (file, directory or symlink) exists
// at path.
func TargetExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsProject reports whether root contains the package.json manifest. Its
// contents are not inspected.
func IsProject(root string) bool {
	_, err := os.Stat(ManifestPath(root))
	return err == nil
}

// ManifestPath returns the path of the manifest under root.
func ManifestPath(root string) string {
	return filepath.Join(root, templates.ManifestFile)
}

// EntryPointPath returns the path of the generated server entry point.
func EntryPointPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(templates.EntryPointFile))
}

// ModuleDir returns the directory a resource module is generated into.
func ModuleDir(root, module string) string {
	return filepath.Join(root, filepath.FromSlash(templates.ModulesDir), module)
}
