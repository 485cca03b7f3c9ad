package scaffold

import (
	"fmt"
	"strings"

	"github.com/expressmod/cli/internal/naming"
	"github.com/expressmod/cli/internal/templates"
)

// GettingStarted returns the markdown shown after a project is created.
// installCommand is shown as a manual step when the install was skipped.
func GettingStarted(projectName string, installed bool, installCommand string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Express project %q created successfully!\n\n", projectName)
	b.WriteString("## To get started\n\n```sh\n")
	fmt.Fprintf(&b, "cd %s\n", projectName)
	if !installed {
		fmt.Fprintf(&b, "%s\n", installCommand)
	}
	b.WriteString("npm run dev\n```\n\n")

	b.WriteString("## Configuration\n\n")
	b.WriteString("1. Update the MongoDB settings in `.env`:\n")
	b.WriteString("   - `MONGODB_URI=mongodb://localhost:27017`\n")
	fmt.Fprintf(&b, "   - `DB_NAME=%s%s`\n", projectName, templates.DBNameSuffix)
	b.WriteString("2. The project uses Mongoose with schema validation, automatic timestamps and a model/controller/routes layout per module.\n\n")

	b.WriteString("## To add new modules\n\n```sh\nexpress-mod-cli add <module-name>\n```\n")

	return b.String()
}

// ModuleEndpoints returns the markdown listing the routes of a new module.
func ModuleEndpoints(n naming.Names) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Module %q added successfully!\n\n", n.Name)
	b.WriteString("## Available API endpoints\n\n")
	b.WriteString("| Method | Path | Action |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| GET | `/%s` | Get all %s |\n", n.Name, n.Name)
	fmt.Fprintf(&b, "| GET | `/%s/:id` | Get one %s |\n", n.Name, n.Capitalized)
	fmt.Fprintf(&b, "| POST | `/%s` | Create a new %s |\n", n.Name, n.Capitalized)
	fmt.Fprintf(&b, "| PATCH | `/%s/:id` | Update a %s |\n", n.Name, n.Capitalized)
	fmt.Fprintf(&b, "| DELETE | `/%s/:id` | Delete a %s |\n", n.Name, n.Capitalized)

	return b.String()
}
