// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/expressmod/cli/internal/config"
	oerrors "github.com/expressmod/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once per root command and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration. Never nil after PersistentPreRunE.
	Config *config.Config

	// ConfigPath is the raw --config flag value.
	ConfigPath string

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess      = oerrors.ExitSuccess
	ExitGeneralError = oerrors.ExitGeneralError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
