// Package config loads, validates and watches the gridbrowser TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// created is set when Load wrote a fresh default config file.
	created string
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// GRIDBROWSER_GRID_DEFAULT_URL, GRIDBROWSER_APPEARANCE_ACCENT_COLOR, ...
	v.SetEnvPrefix("GRIDBROWSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "GRIDBROWSER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GRIDBROWSER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "GRIDBROWSER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind GRIDBROWSER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.apply()
}

// Override pins key to value above file and environment values, e.g. for
// command line flags. It survives reloads.
func (m *Manager) Override(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.Set(key, value)
	if m.config == nil {
		return nil
	}
	return m.apply()
}

// apply unmarshals, normalizes and validates the current viper state. Must
// be called with m.mu held for write.
func (m *Manager) apply() error {
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Grid.DefaultURL = strings.TrimSpace(config.Grid.DefaultURL)
	config.Appearance.AccentColor = strings.ToLower(strings.TrimSpace(config.Appearance.AccentColor))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
	if config.Window.Title == "" {
		config.Window.Title = defaultWindowTitle
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// CreatedConfigFile returns the path of the default config file written by
// Load, or "" when an existing file was used.
func (m *Manager) CreatedConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.created = configFile
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setGridDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setNavigationDefaults(defaults)
	m.setWindowDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setGridDefaults(defaults *Config) {
	m.viper.SetDefault("grid.initial_rows", defaults.Grid.InitialRows)
	m.viper.SetDefault("grid.initial_columns", defaults.Grid.InitialColumns)
	m.viper.SetDefault("grid.default_url", defaults.Grid.DefaultURL)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.accent_color", defaults.Appearance.AccentColor)
	m.viper.SetDefault("appearance.border_width", defaults.Appearance.BorderWidth)
}

func (m *Manager) setNavigationDefaults(defaults *Config) {
	m.viper.SetDefault("navigation.normalize_input", defaults.Navigation.NormalizeInput)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.title", defaults.Window.Title)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
}
