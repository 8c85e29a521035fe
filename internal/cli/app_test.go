package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridbrowser/internal/infrastructure/config"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("GRIDBROWSER_LOG_LEVEL", "")
	t.Setenv("GRIDBROWSER_LOG_FORMAT", "")
	return dir
}

func TestNewApp_LoadsDefaults(t *testing.T) {
	dir := isolateXDG(t)

	app, err := NewApp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, config.DefaultConfig().Grid, app.Config.Grid)
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Context())
	assert.FileExists(t, filepath.Join(dir, "config", "gridbrowser", "config.toml"))
}

func TestApp_OverrideRefreshesConfig(t *testing.T) {
	isolateXDG(t)

	app, err := NewApp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NoError(t, app.Override("grid.initial_rows", 3))
	assert.Equal(t, 3, app.Config.Grid.InitialRows)

	err = app.Override("grid.initial_columns", 0)
	assert.Error(t, err)
}

func TestNewLogger_FileLog(t *testing.T) {
	isolateXDG(t)
	logDir := t.TempDir()

	logger, closer, err := newLogger(config.LoggingConfig{
		Level:         "info",
		Format:        "json",
		EnableFileLog: true,
		LogDir:        logDir,
	})
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Info().Msg("hello file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(logDir, "gridbrowser.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, closer, err := newLogger(config.LoggingConfig{Level: "loud"})

	assert.Error(t, err)
	assert.Nil(t, closer)
}

func TestApp_CloseWithoutLogFile(t *testing.T) {
	app := &App{}

	assert.NoError(t, app.Close())
	assert.NotNil(t, app.Context())
}
