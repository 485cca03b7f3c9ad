package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("my-app", nil))
}

func TestRenderFileTree_ProjectLayout(t *testing.T) {
	files := map[string]string{
		"package.json":                   "Dependency manifest",
		"src/index.js":                   "Server entry point",
		"src/config/db.js":               "Database connection",
		"src/middleware/errorHandler.js": "Error handling middleware",
		"src/modules/":                   "",
		".env":                           "Environment variables",
	}

	tree := RenderFileTree("my-app", files)
	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "my-app/")
	// directories come before files
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, tree, "modules/")
	assert.Contains(t, tree, "└── package.json")
	assert.Contains(t, tree, "Database connection")
}

func TestRenderFileTree_Order(t *testing.T) {
	tree := RenderFileTree("root", map[string]string{
		"b.js":  "",
		"a.js":  "",
		"dir/c": "",
		".env":  "",
	})

	idxDir := strings.Index(tree, "dir/")
	idxEnv := strings.Index(tree, ".env")
	idxA := strings.Index(tree, "a.js")
	idxB := strings.Index(tree, "b.js")

	assert.Less(t, idxDir, idxEnv)
	assert.Less(t, idxEnv, idxA)
	assert.Less(t, idxA, idxB)
}

func TestRenderFileTree_NestedPrefixes(t *testing.T) {
	tree := RenderFileTree("root", map[string]string{
		"src/a/x.js": "",
		"src/b.js":   "",
	})

	assert.Contains(t, tree, "└── src/\n")
	assert.Contains(t, tree, "    ├── a/\n")
	assert.Contains(t, tree, "    │   └── x.js\n")
	assert.Contains(t, tree, "    └── b.js\n")
}
