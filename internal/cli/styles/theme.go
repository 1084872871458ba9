// Package styles renders CLI output in the colors of the managed theme.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from a theme palette.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// Status colors shared by both palettes.
const (
	warningColor = lipgloss.Color("#f59e0b")
	successColor = lipgloss.Color("#22c55e")
)

// NewTheme returns the CLI styles matching a rendered theme.
func NewTheme(resolved entity.ResolvedTheme) *Theme {
	return NewThemeFromPalette(theme.PaletteFor(resolved))
}

// NewThemeFromPalette maps palette tokens onto CLI styles.
func NewThemeFromPalette(p theme.Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Card),
		Text:       lipgloss.Color(p.Foreground),
		Muted:      lipgloss.Color(p.MutedForeground),
		Accent:     lipgloss.Color(p.Ring),
		Border:     lipgloss.Color(p.Border),
		Error:      lipgloss.Color(p.Destructive),
		Warning:    warningColor,
		Success:    successColor,
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	pill := func(text, bg lipgloss.Color) lipgloss.Style { return fg(text).Background(bg).Padding(0, 1) }

	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Badge = pill(t.Background, t.Accent)
	t.BadgeMuted = pill(t.Text, t.Surface)

	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.BoxHeader = t.Title.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
	return t
}

// ModeBadge renders a mode name, filled when active.
func (t *Theme) ModeBadge(name string, active bool) string {
	if active {
		return t.Badge.Render(name)
	}
	return t.BadgeMuted.Render(name)
}
