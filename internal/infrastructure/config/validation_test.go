package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "zero rows", mutate: func(c *Config) { c.Grid.InitialRows = 0 }, wantKey: "grid.initial_rows"},
		{name: "too many columns", mutate: func(c *Config) { c.Grid.InitialColumns = maxGridDimension + 1 }, wantKey: "grid.initial_columns"},
		{name: "empty default url", mutate: func(c *Config) { c.Grid.DefaultURL = "" }, wantKey: "grid.default_url"},
		{name: "free text default url", mutate: func(c *Config) { c.Grid.DefaultURL = "not a url" }, wantKey: "grid.default_url"},
		{name: "named color", mutate: func(c *Config) { c.Appearance.AccentColor = "teal" }, wantKey: "appearance.accent_color"},
		{name: "zero border", mutate: func(c *Config) { c.Appearance.BorderWidth = 0 }, wantKey: "appearance.border_width"},
		{name: "tiny window", mutate: func(c *Config) { c.Window.Width = 10 }, wantKey: "window.width"},
		{name: "short window", mutate: func(c *Config) { c.Window.Height = 10 }, wantKey: "window.height"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.InitialRows = 0
	cfg.Appearance.AccentColor = "red"

	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.initial_rows")
	assert.Contains(t, err.Error(), "appearance.accent_color")
}

func TestValidateConfig_ShortHexColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.AccentColor = "#0af"

	assert.NoError(t, validateConfig(cfg))
}
