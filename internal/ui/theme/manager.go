package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/gridbrowser/internal/infrastructure/config"
	"github.com/bnema/gridbrowser/internal/logging"
)

// Manager holds the accent and the CSS provider it was applied with.
type Manager struct {
	accent      Accent
	cssProvider *gtk.CSSProvider
}

// NewManager creates a new theme manager from configuration.
func NewManager(ctx context.Context, cfg *config.Config) *Manager {
	accent := AccentFromConfig(cfg)

	logging.FromContext(ctx).Debug().
		Str("accent", accent.Color).
		Int("border_width", accent.BorderWidth).
		Msg("theme manager initialized")

	return &Manager{accent: accent}
}

// Accent returns the current accent.
func (m *Manager) Accent() Accent {
	return m.accent
}

// CSS returns the stylesheet for the current accent.
func (m *Manager) CSS() string {
	return GenerateCSS(m.accent)
}

// ApplyToDisplay loads the theme CSS into the display. Reuses one provider
// so repeated calls replace the previous stylesheet.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	if m.cssProvider == nil {
		m.cssProvider = gtk.NewCSSProvider()
		gtk.StyleContextAddProviderForDisplay(
			display,
			m.cssProvider,
			gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
		)
	}
	m.cssProvider.LoadFromString(m.CSS())

	log.Debug().Str("accent", m.accent.Color).Msg("theme CSS applied to display")
}

// UpdateFromConfig swaps the accent and re-applies it when a display is given.
// Reports whether the accent changed.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.Config, display *gdk.Display) bool {
	if cfg == nil {
		return false
	}

	next := AccentFromConfig(cfg)
	if next == m.accent {
		return false
	}
	m.accent = next

	logging.FromContext(ctx).Info().
		Str("accent", next.Color).
		Int("border_width", next.BorderWidth).
		Msg("accent changed")

	if display != nil {
		m.ApplyToDisplay(ctx, display)
	}
	return true
}
