package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/expressmod/cli/internal/installer"
)

// Environment variable prefix for configuration.
const envPrefix = "EXPRESSMOD"

// Config keys.
const (
	KeyInstallCommand = "install.command"
	KeyInstallSkip    = "install.skip"
	KeyInstallQuiet   = "install.quiet"
	KeyLogTimestamps  = "log.timestamps"
)

// Loader handles loading and merging configuration from file, environment
// and defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyInstallCommand, installer.DefaultCommand)
	v.SetDefault(KeyInstallSkip, false)
	v.SetDefault(KeyInstallQuiet, false)

	// No default: nil means "not configured" so the flag or built-in default wins.
	_ = v.BindEnv(KeyLogTimestamps)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used. A missing
// file is not an error. Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	cfg := &Config{
		Install: InstallConfig{
			Command: l.v.GetString(KeyInstallCommand),
			Skip:    l.v.GetBool(KeyInstallSkip),
			Quiet:   l.v.GetBool(KeyInstallQuiet),
		},
	}
	if l.v.IsSet(KeyLogTimestamps) {
		ts := l.v.GetBool(KeyLogTimestamps)
		cfg.Log.Timestamps = &ts
	}

	return cfg, nil
}

// ConfigFileUsed returns the file the last Load read from.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
