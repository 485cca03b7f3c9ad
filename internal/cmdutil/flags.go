// Package cmdutil provides shared command utilities: flag groups, argument
// handling and result printing.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/expressmod/cli/internal/config"
)

// InstallFlags holds the flags that control the dependency install of create.
type InstallFlags struct {
	Skip    bool
	Quiet   bool
	Command string
}

// AddTo registers the install flags on the given cobra command.
func (f *InstallFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Skip, "skip-install", false,
		"Do not run the package manager after generating files (config: install.skip)")
	cmd.Flags().BoolVarP(&f.Quiet, "quiet", "q", false,
		"Hide package manager output behind a spinner (config: install.quiet)")
	cmd.Flags().StringVar(&f.Command, "install-command", "",
		"Install command to run (env: EXPRESSMOD_INSTALL_COMMAND, default: npm install)")
}

// InstallSettings is the outcome of merging install flags with config.
type InstallSettings struct {
	Skip          bool
	Quiet         bool
	Command       string
	CommandSource config.ConfigSource
}

// Resolve merges the flags with cfg. A flag wins only when it was set on the
// command line.
func (f *InstallFlags) Resolve(cmd *cobra.Command, cfg *config.Config) InstallSettings {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := InstallSettings{
		Skip:  cfg.Install.Skip,
		Quiet: cfg.Install.Quiet,
	}
	if cmd.Flags().Changed("skip-install") {
		s.Skip = f.Skip
	}
	if cmd.Flags().Changed("quiet") {
		s.Quiet = f.Quiet
	}

	resolved := config.ResolveInstallCommand(config.ResolveInstallCommandOptions{
		FlagValue:   f.Command,
		ConfigValue: cfg.Install.Command,
	})
	s.Command = resolved.Command
	s.CommandSource = resolved.Source

	return s
}

// NameArg returns the first positional argument, or "" when there is none.
// Further positionals are ignored.
func NameArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
