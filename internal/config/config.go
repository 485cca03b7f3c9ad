// Package config provides configuration loading and management.
package config

import "github.com/expressmod/cli/internal/installer"

// InstallConfig controls the dependency install step of create.
type InstallConfig struct {
	// Command is the install command line, split with shell word rules.
	// Env: EXPRESSMOD_INSTALL_COMMAND, Default: "npm install"
	Command string `json:"command,omitempty" yaml:"command"`

	// Skip disables the install step.
	// Env: EXPRESSMOD_INSTALL_SKIP
	Skip bool `json:"skip,omitempty" yaml:"skip"`

	// Quiet captures installer output behind a spinner.
	// Env: EXPRESSMOD_INSTALL_QUIET
	Quiet bool `json:"quiet,omitempty" yaml:"quiet"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the express-mod configuration.
// Loaded from ~/.express-mod/config.yaml, validated against the embedded CUE schema.
type Config struct {
	Install InstallConfig `json:"install" yaml:"install"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `express-mod-cli config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := false
	return &Config{
		Install: InstallConfig{
			Command: installer.DefaultCommand,
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
