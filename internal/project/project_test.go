package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetExists(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		exists, err := TargetExists(filepath.Join(dir, "my-app"))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("directory", func(t *testing.T) {
		path := filepath.Join(dir, "existing")
		require.NoError(t, os.Mkdir(path, 0o755))

		exists, err := TargetExists(path)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(dir, "file-app")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		exists, err := TargetExists(path)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestIsProject(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsProject(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644))
	assert.True(t, IsProject(dir))
}

func TestIsProject_ContentNotInspected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("not json"), 0o644))

	assert.True(t, IsProject(dir))
}

func TestPaths(t *testing.T) {
	root := filepath.Join("work", "my-app")

	assert.Equal(t, filepath.Join(root, "package.json"), ManifestPath(root))
	assert.Equal(t, filepath.Join(root, "src", "index.js"), EntryPointPath(root))
	assert.Equal(t, filepath.Join(root, "src", "modules", "users"), ModuleDir(root, "users"))
}
