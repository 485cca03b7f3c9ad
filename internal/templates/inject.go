package templates

import (
	"fmt"

	"github.com/expressmod/cli/internal/naming"
)

// Markers written into the entry point at create time. Module lines are
// spliced in directly below them by add.
const (
	ImportMarker   = "// ROUTE_IMPORTS"
	MountingMarker = "// ROUTE_MIDDLEWARE"
)

// ImportStatement returns the require line for a module's router.
func ImportStatement(n naming.Names) string {
	return fmt.Sprintf("const %sRoutes = require('./modules/%s/%s.routes');", n.Name, n.Name, n.Name)
}

// MountStatement returns the line that mounts a module's router at /<name>.
func MountStatement(n naming.Names) string {
	return fmt.Sprintf("app.use('/%s', %sRoutes);", n.Name, n.Name)
}
