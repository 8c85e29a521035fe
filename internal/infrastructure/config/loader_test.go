package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return filepath.Join(root, "config", appName, configFileName)
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 1, mgr.viper.GetInt("grid.initial_rows"))
	assert.Equal(t, "http://www.apple.com", mgr.viper.GetString("grid.default_url"))
	assert.Equal(t, "#30b0c7", mgr.viper.GetString("appearance.accent_color"))
	assert.Equal(t, 4, mgr.viper.GetInt("appearance.border_width"))
	assert.False(t, mgr.viper.GetBool("navigation.normalize_input"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	path := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, path)
	assert.Equal(t, path, mgr.CreatedConfigFile())
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := isolateXDG(t)
	writeConfig(t, path, `
[grid]
initial_rows = 2
initial_columns = 3
default_url = "https://example.com"

[appearance]
accent_color = "#FF8800"
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Empty(t, mgr.CreatedConfigFile())
	assert.Equal(t, 2, cfg.Grid.InitialRows)
	assert.Equal(t, 3, cfg.Grid.InitialColumns)
	assert.Equal(t, "https://example.com", cfg.Grid.DefaultURL)
	assert.Equal(t, "#ff8800", cfg.Appearance.AccentColor)
	assert.Equal(t, defaultBorderWidth, cfg.Appearance.BorderWidth)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := isolateXDG(t)
	writeConfig(t, path, `
[appearance]
border_width = 0
`)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.border_width")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := isolateXDG(t)
	writeConfig(t, path, "[logging]\nlevel = \"warn\"\n")
	t.Setenv("GRIDBROWSER_LOG_LEVEL", "debug")
	t.Setenv("GRIDBROWSER_GRID_INITIAL_COLUMNS", "4")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "debug", mgr.Get().Logging.Level)
	assert.Equal(t, 4, mgr.Get().Grid.InitialColumns)
}

func TestOverride(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, mgr.Override("grid.initial_rows", 3))
	assert.Equal(t, 3, mgr.Get().Grid.InitialRows)

	err = mgr.Override("grid.initial_columns", 0)
	require.Error(t, err)
	assert.Equal(t, 1, mgr.Get().Grid.InitialColumns)
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Grid.InitialRows = 9

	assert.Equal(t, 1, mgr.Get().Grid.InitialRows)
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	path := isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg) })

	writeConfig(t, path, "[appearance]\naccent_color = \"#112233\"\nborder_width = 6\n")
	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.Len(t, got, 1)
	assert.Equal(t, "#112233", got[0].Appearance.AccentColor)
	assert.Equal(t, 6, mgr.Get().Appearance.BorderWidth)
}

func TestReload_InvalidFileKeepsPreviousConfig(t *testing.T) {
	path := isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeConfig(t, path, "[appearance]\naccent_color = \"blue\"\n")
	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, defaultAccentColor, mgr.Get().Appearance.AccentColor)
}
