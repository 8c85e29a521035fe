package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/gridbrowser/internal/domain/entity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Grid.InitialRows)
	assert.Equal(t, 1, cfg.Grid.InitialColumns)
	assert.Equal(t, entity.DefaultPaneURL, cfg.Grid.DefaultURL)
	assert.Equal(t, "#30b0c7", cfg.Appearance.AccentColor)
	assert.Equal(t, 4, cfg.Appearance.BorderWidth)
	assert.False(t, cfg.Navigation.NormalizeInput)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.EnableFileLog)
}

func TestGetLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	path, err := GetLogFile("")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/state/gridbrowser/gridbrowser.log", path)

	path, err = GetLogFile("/var/log/gb")
	assert.NoError(t, err)
	assert.Equal(t, "/var/log/gb/gridbrowser.log", path)
}
