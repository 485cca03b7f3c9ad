package config

import (
	"os"
	"path/filepath"
)

const (
	homeDirName    = ".express-mod"
	configFileName = "config.yaml"

	// ConfigEnvVar overrides the config file location.
	ConfigEnvVar = "EXPRESSMOD_CONFIG"
)

// Paths contains standard filesystem paths for express-mod.
type Paths struct {
	// ConfigFile is the path to the config file (~/.express-mod/config.yaml).
	ConfigFile string

	// HomeDir is the express-mod home directory (~/.express-mod).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, homeDirName)

	return &Paths{
		ConfigFile: filepath.Join(home, configFileName),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If EXPRESSMOD_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(ConfigEnvVar); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
