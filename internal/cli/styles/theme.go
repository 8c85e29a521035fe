// Package styles provides lipgloss styles for command line output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/gridbrowser/internal/infrastructure/config"
)

// Palette holds the base colors of the terminal theme.
type Palette struct {
	Text   string
	Muted  string
	Accent string
	Border string
}

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	Box          lipgloss.Style
}

// DefaultPalette returns the dark terminal palette.
func DefaultPalette() Palette {
	return Palette{
		Text:   "#ffffff",
		Muted:  "#909090",
		Accent: "#30b0c7",
		Border: "#333333",
	}
}

// NewTheme creates a Theme whose accent follows the pane highlight color.
func NewTheme(cfg *config.Config) *Theme {
	p := DefaultPalette()
	if cfg != nil && cfg.Appearance.AccentColor != "" {
		p.Accent = cfg.Appearance.AccentColor
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Text:   lipgloss.Color(p.Text),
		Muted:  lipgloss.Color(p.Muted),
		Accent: lipgloss.Color(p.Accent),
		Border: lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Success: lipgloss.Color(p.Accent),
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
