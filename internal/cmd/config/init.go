package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/expressmod/cli/internal/cmdtypes"
	"github.com/expressmod/cli/internal/config"
	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/fsutil"
	"github.com/expressmod/cli/internal/output"
)

const configHeader = `# express-mod-cli configuration.
# Environment variables override these values, e.g. EXPRESSMOD_INSTALL_COMMAND.
`

func newInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the express-mod-cli configuration.

Writes ~/.express-mod/config.yaml (or the --config path) with default values
for the install step and logging.

Examples:
  # Initialize configuration
  express-mod-cli config init

  # Overwrite existing configuration
  express-mod-cli config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

// configFilePath returns the --config path or the default location.
func configFilePath(gc *cmdtypes.GlobalConfig) (string, error) {
	path := ""
	if gc != nil {
		path = gc.ConfigPath
	}
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
	}
	return config.ExpandPath(path)
}

// MarshalDefault renders the default configuration as YAML.
func MarshalDefault() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func runInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := configFilePath(gc)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return oerrors.NewExitError(&oerrors.DetailError{
			Type:     "target exists",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrExists,
		}, oerrors.ExitGeneralError)
	}

	content, err := MarshalDefault()
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.NewExitError(fmt.Errorf("creating config directory: %w", err), oerrors.ExitGeneralError)
	}
	if err := fsutil.WriteFileAtomic(path, content, 0o600); err != nil {
		return oerrors.NewExitError(fmt.Errorf("writing %s: %w", path, err), oerrors.ExitGeneralError)
	}

	output.Debug("wrote config", "path", path)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(c.OutOrStdout(), "Validate with: express-mod-cli config vet")

	return nil
}
