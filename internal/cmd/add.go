package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/expressmod/cli/internal/cmdtypes"
	"github.com/expressmod/cli/internal/cmdutil"
	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/scaffold"
)

const noModuleNameMessage = "Please provide a module name."

// NewAddCmd creates the add command.
func NewAddCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "add <module-name>",
		Short: "Add a new module to the current project",
		Long: `Add a resource module to the Express project in the current directory.

Generates src/modules/<name>/ with a Mongoose model, a controller and an
Express router, then registers the router in src/index.js below the
// ROUTE_IMPORTS and // ROUTE_MIDDLEWARE markers. The module is mounted at
/<name>.

Running add twice for the same name rewrites the module files and registers
the router a second time.

Examples:
  # Add a 'users' module, served at /users
  express-mod-cli add users`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
}

func runAdd(args []string) error {
	name := cmdutil.NameArg(args)
	if name == "" {
		return oerrors.NewExitError(
			oerrors.NewUsageError(noModuleNameMessage, "Usage: express-mod-cli add <module-name>"),
			oerrors.ExitGeneralError,
		)
	}

	output.Debug("dispatching", "command", "add", "name", name)

	cwd, err := os.Getwd()
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("getting working directory: %w", err), oerrors.ExitGeneralError)
	}

	result, err := scaffold.AddModule(scaffold.AddOptions{Name: name, Dir: cwd})
	if err != nil {
		printPartialAdd(result)
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Added module %s in %s",
		output.StyleNoun.Render(result.Module.Name), result.ModuleDir)))
	output.Println("")
	cmdutil.PrintCreated(result.Root, result.Files)
	cmdutil.PrintFileLines(result.Patched, output.StatusPatched)
	output.Println("")
	cmdutil.PrintMarkdown(scaffold.ModuleEndpoints(result.Module))

	return nil
}

// printPartialAdd lists what an interrupted add left on disk.
func printPartialAdd(result *scaffold.AddResult) {
	if result == nil || result.Failed == "" {
		return
	}
	created := make([]string, 0, len(result.Files))
	for p := range result.Files {
		created = append(created, p)
	}
	cmdutil.PrintFileLines(created, output.StatusCreated)
	cmdutil.PrintFileLines(result.Patched, output.StatusPatched)
	cmdutil.PrintFileLines([]string{result.Failed}, output.StatusFailed)
}
