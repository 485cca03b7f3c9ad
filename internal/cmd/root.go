// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/expressmod/cli/internal/cmd/config"
	"github.com/expressmod/cli/internal/cmdtypes"
	appconfig "github.com/expressmod/cli/internal/config"
	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/version"
)

// Messages printed by the dispatcher.
const (
	noCommandMessage      = "Please provide a command (e.g., create or add)."
	unknownCommandMessage = `Unknown command: %s. Use "create" or "add".`
)

// NewRootCmd creates the root command for express-mod-cli.
func NewRootCmd() *cobra.Command {
	gc := &cmdtypes.GlobalConfig{}
	var timestamps bool

	rootCmd := &cobra.Command{
		Use:   "express-mod-cli <command> <name>",
		Short: "Scaffold modular Express + Mongoose projects",
		Long: `express-mod-cli generates Express + Mongoose backends with a
model/controller/routes layout and adds resource modules to them.

Examples:
  express-mod-cli create my-app      # Create a new project called 'my-app'
  express-mod-cli add users          # Add a 'users' module to the current project`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, gc, timestamps)
		},
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().StringVar(&gc.ConfigPath, "config", "", "Path to config file (env: EXPRESSMOD_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&gc.Verbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd(gc))
	rootCmd.AddCommand(NewAddCmd(gc))
	rootCmd.AddCommand(config.NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, timestamps bool) error {
	cfg, err := appconfig.NewLoader().Load(gc.ConfigPath)
	if err != nil {
		// Commands still work on defaults; config vet reports the details.
		output.Warn("ignoring config file", "error", err)
		cfg = appconfig.DefaultConfig()
		cfg.Log.Timestamps = nil
	}
	gc.Config = cfg

	// Precedence: flag (if explicitly set) > config > default (nil = on)
	logCfg := output.LogConfig{Verbose: gc.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"command", cmd.Name(),
		"config", gc.ConfigPath,
		"installCommand", cfg.Install.Command,
	)

	return nil
}

// runRoot handles a bare invocation and unknown command keywords.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return oerrors.NewExitError(
			oerrors.NewUsageError(noCommandMessage, `Run "express-mod-cli --help" for usage.`),
			oerrors.ExitGeneralError,
		)
	}

	msg := fmt.Sprintf(unknownCommandMessage, args[0])
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, msg)
	fmt.Fprintln(w)
	fmt.Fprint(w, cmd.UsageString())

	return &oerrors.ExitError{
		Code:    oerrors.ExitGeneralError,
		Err:     oerrors.Wrap(oerrors.ErrValidation, msg),
		Printed: true,
	}
}

// ErrorHandler prints command errors for fang. Errors the command layer
// already printed are skipped.
func ErrorHandler(w io.Writer, _ fang.Styles, err error) {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return
	}
	fmt.Fprintln(w, strings.TrimRight(err.Error(), "\n"))
}
