package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is what the status command reports.
type Status struct {
	Mode        string   `json:"mode"`
	Theme       string   `json:"theme"`
	SystemTheme string   `json:"system_theme"`
	Modes       []string `json:"modes"`
	Stored      bool     `json:"stored"`
	StorageKey  string   `json:"storage_key"`
	Backend     string   `json:"backend"`
	Markup      string   `json:"markup,omitempty"`
}

// StatusRenderer renders the theme status.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// Render renders the status as a boxed summary.
func (r *StatusRenderer) Render(s Status) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle

	modes := make([]string, 0, len(s.Modes))
	for _, m := range s.Modes {
		modes = append(modes, r.theme.ModeBadge(m, m == s.Mode))
	}

	stored := r.theme.Subtle.Render("(default)")
	if s.Stored {
		stored = r.theme.Subtle.Render("(stored)")
	}

	lines := []string{
		fmt.Sprintf("%s %s %s %s", iconStyle.Render(ModeIcon(s.Mode)), keyStyle.Render("Mode  "), r.theme.Highlight.Render(s.Mode), stored),
		fmt.Sprintf("%s %s %s", iconStyle.Render(ModeIcon(s.Theme)), keyStyle.Render("Theme "), r.theme.Normal.Render(s.Theme)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconDesktop), keyStyle.Render("System"), r.theme.Normal.Render(s.SystemTheme)),
		"",
		strings.Join(modes, " "),
	}
	if s.Markup != "" {
		lines = append(lines, "", r.theme.Subtle.Render(s.Markup))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconPalette), "Theme"))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

// RenderChange renders a one-line confirmation after the mode changed.
func (r *StatusRenderer) RenderChange(mode, theme string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s %s %s %s",
		iconStyle.Render(ModeIcon(theme)),
		r.theme.Highlight.Render(mode),
		r.theme.Subtle.Render(IconArrow),
		r.theme.Normal.Render(theme),
	)
}
