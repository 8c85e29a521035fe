package config

import "github.com/bnema/gridbrowser/internal/domain/entity"

// Default configuration constants
const (
	// Grid defaults
	defaultInitialRows    = 1
	defaultInitialColumns = 1

	// Appearance defaults
	defaultAccentColor = "#30b0c7"
	defaultBorderWidth = 4 // pixels

	// Window defaults
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	defaultWindowTitle  = "Grid Browser"

	// Grid size limits
	maxGridDimension = 16
	maxBorderWidth   = 32
)

// DefaultConfig returns the default configuration values for gridbrowser.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			InitialRows:    defaultInitialRows,
			InitialColumns: defaultInitialColumns,
			DefaultURL:     entity.DefaultPaneURL,
		},
		Appearance: AppearanceConfig{
			AccentColor: defaultAccentColor,
			BorderWidth: defaultBorderWidth,
		},
		Navigation: NavigationConfig{
			NormalizeInput: false,
		},
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
		},
	}
}
