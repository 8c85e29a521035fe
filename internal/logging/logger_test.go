package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{input: "trace", want: zerolog.TraceLevel},
		{input: "debug", want: zerolog.DebugLevel},
		{input: "", want: zerolog.InfoLevel},
		{input: "INFO", want: zerolog.InfoLevel},
		{input: "warn", want: zerolog.WarnLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "fatal", want: zerolog.FatalLevel},
		{input: "loud", want: zerolog.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, Format: "json", Output: &buf})

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn().Str("pane_id", "pane-1").Msg("kept")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "pane-1", entry["pane_id"])
	assert.Contains(t, entry, "time")
}

func TestNew_FileReceivesCopy(t *testing.T) {
	var out, file bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &out, File: &file})

	logger.Info().Msg("hello")

	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, file.String(), "hello")
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), base)
	ctx = WithComponent(ctx, "grid")
	ctx = WithPaneID(ctx, "pane-3")
	ctx = WithURL(ctx, "http://www.apple.com")

	FromContext(ctx).Debug().Msg("selected")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "grid", entry["component"])
	assert.Equal(t, "pane-3", entry["pane_id"])
	assert.Equal(t, "http://www.apple.com", entry["url"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
