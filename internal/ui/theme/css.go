// Package theme provides GTK CSS styling for the pane grid.
package theme

import (
	"fmt"
	"strings"

	"github.com/bnema/gridbrowser/internal/infrastructure/config"
)

// CSS classes shared with the components.
const (
	ClassPaneHighlight = "pane-highlight"
	ClassPaneSelected  = "pane-selected"
	ClassAddressEntry  = "grid-address-entry"
)

const (
	fallbackAccentColor = "#30b0c7"
	fallbackBorderWidth = 4
)

// Accent describes the selected pane border.
type Accent struct {
	Color       string
	BorderWidth int
}

// DefaultAccent returns the teal 4px border.
func DefaultAccent() Accent {
	return Accent{Color: fallbackAccentColor, BorderWidth: fallbackBorderWidth}
}

// AccentFromConfig reads the accent from cfg, falling back per field.
func AccentFromConfig(cfg *config.Config) Accent {
	a := DefaultAccent()
	if cfg == nil {
		return a
	}
	if cfg.Appearance.AccentColor != "" {
		a.Color = cfg.Appearance.AccentColor
	}
	if cfg.Appearance.BorderWidth > 0 {
		a.BorderWidth = cfg.Appearance.BorderWidth
	}
	return a
}

// GenerateCSS creates GTK4 CSS for the grid using the accent.
func GenerateCSS(a Accent) string {
	if a.Color == "" {
		a.Color = fallbackAccentColor
	}
	if a.BorderWidth <= 0 {
		a.BorderWidth = fallbackBorderWidth
	}

	var sb strings.Builder

	sb.WriteString("/* Theme variables */\n")
	sb.WriteString(":root {\n")
	fmt.Fprintf(&sb, "\t--accent: %s;\n", a.Color)
	sb.WriteString("}\n\n")

	sb.WriteString(generatePaneCSS(a))
	sb.WriteString("\n")
	sb.WriteString(generateToolbarCSS())

	return sb.String()
}

// generatePaneCSS draws the highlight inside the pane so selecting never
// changes pane geometry.
func generatePaneCSS(a Accent) string {
	return fmt.Sprintf(`/* ===== Pane Styling ===== */

.%[1]s {
	background-color: transparent;
	border: 0 solid transparent;
	border-radius: 0;
}

.%[1]s.%[2]s {
	border: %[3]dpx solid var(--accent);
}
`, ClassPaneHighlight, ClassPaneSelected, a.BorderWidth)
}

func generateToolbarCSS() string {
	return fmt.Sprintf(`/* ===== Toolbar ===== */

.%s {
	min-width: 24em;
}
`, ClassAddressEntry)
}
