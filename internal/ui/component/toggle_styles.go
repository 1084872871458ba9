package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

// toggleStyles are rebuilt from the provider's resolved theme on every
// render so a theme change restyles the widget.
type toggleStyles struct {
	Button     lipgloss.Style
	Menu       lipgloss.Style
	Item       lipgloss.Style
	ItemActive lipgloss.Style
	ItemCursor lipgloss.Style
	Text       lipgloss.Style
}

func newToggleStyles(resolved entity.ResolvedTheme, size Size, variant Variant) toggleStyles {
	p := theme.PaletteFor(resolved)
	fg := lipgloss.Color(p.Foreground)
	border := lipgloss.Color(p.Border)

	button := lipgloss.NewStyle().Foreground(fg)
	switch size {
	case SizeSmall:
		button = button.Padding(0, 1)
	case SizeLarge:
		button = button.Padding(1, 3).Bold(true)
	default:
		button = button.Padding(0, 2)
	}

	switch variant {
	case VariantOutline:
		button = button.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border)
	case VariantGhost:
	default:
		button = button.
			Background(lipgloss.Color(p.Card)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border)
	}

	return toggleStyles{
		Button: button,
		Menu: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Card)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			Foreground(fg).
			PaddingLeft(1).
			PaddingRight(1),
		ItemActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.AccentForeground)).
			Background(lipgloss.Color(p.Accent)).
			PaddingLeft(1).
			PaddingRight(1),
		ItemCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Ring)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.MutedForeground)).
			Bold(true),
	}
}
