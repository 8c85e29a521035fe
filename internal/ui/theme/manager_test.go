package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/gridbrowser/internal/infrastructure/config"
)

func TestAccentFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want Accent
	}{
		{name: "nil config", cfg: nil, want: DefaultAccent()},
		{name: "defaults", cfg: config.DefaultConfig(), want: Accent{Color: "#30b0c7", BorderWidth: 4}},
		{
			name: "custom",
			cfg: &config.Config{Appearance: config.AppearanceConfig{
				AccentColor: "#ff0000",
				BorderWidth: 2,
			}},
			want: Accent{Color: "#ff0000", BorderWidth: 2},
		},
		{
			name: "partial",
			cfg:  &config.Config{Appearance: config.AppearanceConfig{BorderWidth: 7}},
			want: Accent{Color: "#30b0c7", BorderWidth: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccentFromConfig(tt.cfg))
		})
	}
}

func TestGenerateCSS(t *testing.T) {
	css := GenerateCSS(Accent{Color: "#112233", BorderWidth: 6})

	assert.Contains(t, css, "--accent: #112233;")
	assert.Contains(t, css, ".pane-highlight.pane-selected {\n\tborder: 6px solid var(--accent);")
	assert.Contains(t, css, ".pane-highlight {\n\tbackground-color: transparent;\n\tborder: 0 solid transparent;")
	assert.Contains(t, css, ".grid-address-entry")
}

func TestGenerateCSS_ZeroAccentFallsBack(t *testing.T) {
	assert.Equal(t, GenerateCSS(DefaultAccent()), GenerateCSS(Accent{}))
}

func TestManager_UpdateFromConfig(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, config.DefaultConfig())

	assert.False(t, m.UpdateFromConfig(ctx, nil, nil))
	assert.False(t, m.UpdateFromConfig(ctx, config.DefaultConfig(), nil))

	cfg := config.DefaultConfig()
	cfg.Appearance.AccentColor = "#abcdef"
	assert.True(t, m.UpdateFromConfig(ctx, cfg, nil))
	assert.Equal(t, "#abcdef", m.Accent().Color)
	assert.Contains(t, m.CSS(), "--accent: #abcdef;")
}
