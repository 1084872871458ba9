package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shade/internal/domain/build"
)

// logo is a disc split between the light and dark halves.
const logo = ` ▄███▄
█░░███
█░░███
 ▀███▀`

// AboutRenderer renders the version screen: logo on the left, facts on the right.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates an about renderer.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render lays out the build facts next to the logo.
func (r *AboutRenderer) Render(info build.Info) string {
	art := r.theme.Highlight.MarginTop(1).MarginLeft(2).Render(logo)

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	fact := func(glyph, label, value string) string {
		return icon.Render(glyph) + " " + r.theme.Subtle.Render(label) + " " + r.theme.Highlight.Render(value)
	}

	facts := strings.Join([]string{
		fact(IconVersion, "Version", info.Version),
		fact(IconGitBranch, "Commit", info.Commit),
		fact(IconCalendar, "Built", info.BuildDate),
		fact(IconGo, "Go", info.GoVersion),
		"",
		icon.Render(IconGithub) + " " + r.theme.Subtle.Render(build.RepoURL()),
		r.theme.Subtle.Render("By") + " " + r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, art, "   ", facts)
}
