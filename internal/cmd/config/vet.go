package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/expressmod/cli/internal/cmdtypes"
	"github.com/expressmod/cli/internal/config"
	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/output"
)

func newVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file against the internal schema.

The command validates ~/.express-mod/config.yaml by default.
Use --config or EXPRESSMOD_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, gc)
		},
	}
}

func runVet(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	path, err := configFilePath(gc)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewExitError(oerrors.NewNotFoundError(
				"config file not found",
				path,
				"Run 'express-mod-cli config init' to create one.",
			), oerrors.ExitGeneralError)
		}
		return oerrors.NewExitError(fmt.Errorf("checking config file: %w", err), oerrors.ExitGeneralError)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("creating validator: %w", err), oerrors.ExitGeneralError)
	}

	if err := validator.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			w := c.ErrOrStderr()
			fmt.Fprintln(w, "Error: config validation failed")
			fmt.Fprintf(w, "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(w, "  %s\n", e.Error())
			}
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
		}
		return oerrors.NewExitError(fmt.Errorf("validating config: %w", err), oerrors.ExitGeneralError)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
