package config

import (
	"fmt"
	"strings"

	"github.com/bnema/gridbrowser/internal/domain/url"
	"github.com/bnema/gridbrowser/internal/domain/validation"
	"github.com/bnema/gridbrowser/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateGrid(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

func validateGrid(config *Config) []string {
	var validationErrors []string
	if config.Grid.InitialRows < 1 || config.Grid.InitialRows > maxGridDimension {
		validationErrors = append(validationErrors, fmt.Sprintf("grid.initial_rows must be between 1 and %d", maxGridDimension))
	}
	if config.Grid.InitialColumns < 1 || config.Grid.InitialColumns > maxGridDimension {
		validationErrors = append(validationErrors, fmt.Sprintf("grid.initial_columns must be between 1 and %d", maxGridDimension))
	}
	if _, err := url.Parse(config.Grid.DefaultURL); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("grid.default_url is not a valid URL: %v", err))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if !validation.IsHexColor(config.Appearance.AccentColor) {
		validationErrors = append(validationErrors, "appearance.accent_color must be a hex color like #30b0c7")
	}
	if config.Appearance.BorderWidth < 1 || config.Appearance.BorderWidth > maxBorderWidth {
		validationErrors = append(validationErrors, fmt.Sprintf("appearance.border_width must be between 1 and %d", maxBorderWidth))
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 320 {
		validationErrors = append(validationErrors, "window.width must be at least 320")
	}
	if config.Window.Height < 240 {
		validationErrors = append(validationErrors, "window.height must be at least 240")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error, fatal")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}
