package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridbrowser/internal/application/port/mocks"
	"github.com/bnema/gridbrowser/internal/cli"
	"github.com/bnema/gridbrowser/internal/infrastructure/config"
)

func newTestApp(t *testing.T) *cli.App {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	a, err := cli.NewApp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addGridFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestApplyGridFlags_OverridesOnlyChangedFlags(t *testing.T) {
	a := newTestApp(t)
	defaults := config.DefaultConfig()

	err := applyGridFlags(newFlagCommand(t, "--rows", "2"), a)

	require.NoError(t, err)
	assert.Equal(t, 2, a.Config.Grid.InitialRows)
	assert.Equal(t, defaults.Grid.InitialColumns, a.Config.Grid.InitialColumns)
	assert.Equal(t, defaults.Grid.DefaultURL, a.Config.Grid.DefaultURL)
}

func TestApplyGridFlags_AllFlags(t *testing.T) {
	a := newTestApp(t)

	err := applyGridFlags(newFlagCommand(t, "-r", "3", "-c", "4", "--url", "https://go.dev"), a)

	require.NoError(t, err)
	assert.Equal(t, 3, a.Config.Grid.InitialRows)
	assert.Equal(t, 4, a.Config.Grid.InitialColumns)
	assert.Equal(t, "https://go.dev", a.Config.Grid.DefaultURL)
}

func TestApplyGridFlags_RejectsInvalidValues(t *testing.T) {
	a := newTestApp(t)

	err := applyGridFlags(newFlagCommand(t, "--columns", "0"), a)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--columns")
}

func TestWriteSchema(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().JSONSchema().Return([]byte(`{"type":"object"}`), nil).Once()

	var buf bytes.Buffer
	err := writeSchema(context.Background(), &buf, provider)

	require.NoError(t, err)
	assert.Equal(t, "{\"type\":\"object\"}\n", buf.String())
}

func TestWriteSchema_ProviderError(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().JSONSchema().Return(nil, errors.New("reflect failed")).Once()

	var buf bytes.Buffer
	err := writeSchema(context.Background(), &buf, provider)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reflect failed")
	assert.Empty(t, buf.String())
}

func TestWriteSchema_RealProviderProducesJSON(t *testing.T) {
	var buf bytes.Buffer

	err := writeSchema(context.Background(), &buf, config.NewSchemaProvider())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "initial_rows")
	assert.Contains(t, buf.String(), "accent_color")
}
