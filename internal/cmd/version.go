package cmd

import (
	"github.com/spf13/cobra"

	"github.com/expressmod/cli/internal/cmdtypes"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show express-mod-cli version information.

Displays:
  - CLI version, commit, and build date
  - Go and CUE SDK versions`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
