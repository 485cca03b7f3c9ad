// Package config provides the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/expressmod/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for express-mod-cli.`,
	}

	c.AddCommand(newInitCmd(gc))
	c.AddCommand(newVetCmd(gc))

	return c
}
