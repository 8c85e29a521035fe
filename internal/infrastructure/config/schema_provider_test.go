package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_JSONSchema(t *testing.T) {
	data, err := NewSchemaProvider().JSONSchema()
	require.NoError(t, err)

	var doc struct {
		ID         string `json:"$id"`
		Title      string `json:"title"`
		Properties map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "https://github.com/bnema/gridbrowser/config.schema.json", doc.ID)
	assert.Equal(t, "Grid Browser Configuration", doc.Title)
	for _, section := range []string{"grid", "appearance", "navigation", "window", "logging"} {
		assert.Contains(t, doc.Properties, section)
	}
	assert.Contains(t, doc.Properties["grid"].Properties, "default_url")
	assert.Contains(t, doc.Properties["appearance"].Properties, "accent_color")
}
