package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigPath renders the config file path. created marks a file that
// was just written with defaults.
func (r *ConfigRenderer) RenderConfigPath(path string, created bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var status string
	if created {
		status = fmt.Sprintf("\n  %s %s",
			iconStyle.Render(IconInfo),
			r.theme.Subtle.Render("created with default settings"),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderSchemaWritten renders the confirmation after the schema was saved to path.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s Schema written to %s", iconStyle.Render(IconCheck), r.theme.Highlight.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
