package config

import (
	"os"

	"github.com/expressmod/cli/internal/installer"
	"github.com/expressmod/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

const installCommandEnv = envPrefix + "_INSTALL_COMMAND"

// ResolveInstallCommandOptions contains options for install command resolution.
type ResolveInstallCommandOptions struct {
	// FlagValue is the --install-command flag value (empty if not set).
	FlagValue string
	// ConfigValue is the install.command value from the config file (empty if not set).
	ConfigValue string
}

// ResolveInstallCommandResult contains the resolved command and its source.
type ResolveInstallCommandResult struct {
	Command string
	Source  ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveInstallCommand resolves the install command using precedence:
// (1) --install-command flag, (2) EXPRESSMOD_INSTALL_COMMAND env,
// (3) install.command, (4) "npm install".
func ResolveInstallCommand(opts ResolveInstallCommandOptions) ResolveInstallCommandResult {
	result := ResolveInstallCommandResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(installCommandEnv)
	// The loader folds env and defaults into ConfigValue; only a distinct
	// value counts as coming from the file.
	configValue := opts.ConfigValue
	if configValue == envValue || configValue == installer.DefaultCommand {
		configValue = ""
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Command == "" {
			result.Command = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	if result.Command == "" {
		result.Command = installer.DefaultCommand
		result.Source = SourceDefault
	}

	for source, value := range result.Shadowed {
		output.Debug("install command shadowed",
			"using", result.Command, "from", string(result.Source),
			"ignored", value, "ignoredFrom", string(source))
	}

	return result
}
