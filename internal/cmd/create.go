package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/expressmod/cli/internal/cmdtypes"
	"github.com/expressmod/cli/internal/cmdutil"
	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/installer"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/scaffold"
)

const noProjectNameMessage = "Please provide a project name."

// newRunner creates the command runner used by the installer.
var newRunner = func() installer.Runner {
	return installer.NewExecRunner()
}

// NewCreateCmd creates the create command.
func NewCreateCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.InstallFlags

	c := &cobra.Command{
		Use:   "create <project-name>",
		Short: "Create a new Express project with modular architecture",
		Long: `Create a new Express + Mongoose project in ./<project-name>.

Generates:
  package.json                     Dependencies and npm scripts
  src/index.js                     Server entry point with route markers
  src/config/db.js                 MongoDB connection via Mongoose
  src/middleware/errorHandler.js   Error handling middleware
  src/modules/                     Resource modules (see 'add')
  .env, .gitignore

Then runs the install command (default "npm install") in the new project.

Examples:
  # Create a project and install dependencies
  express-mod-cli create my-app

  # Only generate files
  express-mod-cli create my-app --skip-install

  # Use a different package manager, output hidden behind a spinner
  express-mod-cli create my-app --install-command "pnpm install" --quiet`,
		Args: cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, gc, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runCreate(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, flags *cmdutil.InstallFlags) error {
	name := cmdutil.NameArg(args)
	if name == "" {
		return oerrors.NewExitError(
			oerrors.NewUsageError(noProjectNameMessage, "Usage: express-mod-cli create <project-name>"),
			oerrors.ExitGeneralError,
		)
	}

	output.Debug("dispatching", "command", "create", "name", name)

	cwd, err := os.Getwd()
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("getting working directory: %w", err), oerrors.ExitGeneralError)
	}

	settings := flags.Resolve(c, gc.Config)
	output.Debug("install settings",
		"skip", settings.Skip,
		"quiet", settings.Quiet,
		"command", settings.Command,
		"source", string(settings.CommandSource),
	)

	opts := scaffold.CreateOptions{Name: name, Dir: cwd}
	if !settings.Skip {
		inst, err := installer.New(settings.Command,
			installer.WithRunner(newRunner()),
			installer.WithQuiet(settings.Quiet),
		)
		if err != nil {
			return oerrors.NewExitError(
				oerrors.NewUsageError(err.Error(), "Check install.command in your config file or --install-command."),
				oerrors.ExitGeneralError,
			)
		}
		opts.Installer = cmdutil.WrapInstaller(inst)
	}

	result, err := scaffold.CreateProject(c.Context(), opts)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created project %s in %s",
		output.StyleNoun.Render(name), result.Root)))
	output.Println("")
	cmdutil.PrintCreated(result.Root, result.Files)
	output.Println("")
	cmdutil.PrintMarkdown(scaffold.GettingStarted(name, result.Installed, settings.Command))

	return nil
}
