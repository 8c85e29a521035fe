package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "gridbrowser"
	configFileName = "config.toml"
	logFileName    = "gridbrowser.log"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for gridbrowser:
// - $XDG_CONFIG_HOME/gridbrowser (default: ~/.config/gridbrowser)
// - $XDG_STATE_HOME/gridbrowser (default: ~/.local/state/gridbrowser)
func GetXDGDirs() (*XDGDirs, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	stateHome := os.Getenv("XDG_STATE_HOME")

	if configHome == "" || stateHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		if configHome == "" {
			configHome = filepath.Join(homeDir, ".config")
		}
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		StateHome:  filepath.Join(stateHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for gridbrowser.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path of config.toml.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetLogFile returns the path of the optional log file. An empty logDir
// selects the XDG state directory.
func GetLogFile(logDir string) (string, error) {
	if logDir == "" {
		dirs, err := GetXDGDirs()
		if err != nil {
			return "", err
		}
		logDir = dirs.StateHome
	}
	return filepath.Join(logDir, logFileName), nil
}

// EnsureDirectories creates the config and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}

// OpenLogFile opens the log file for appending, creating its directory.
func OpenLogFile(logDir string) (*os.File, error) {
	path, err := GetLogFile(logDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
}
