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

// RenderConfigInfo renders the config and storage locations.
func (r *ConfigRenderer) RenderConfigInfo(configPath, backend, storagePath string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	storage := backend
	if storagePath != "" && backend != "memory" {
		storage = fmt.Sprintf("%s %s", backend, pathStyle.Render(storagePath))
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Storage %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(configPath),
		iconStyle.Render(IconDatabase),
		storage,
	)
}

// RenderOpening renders the message shown before launching an editor.
func (r *ConfigRenderer) RenderOpening(path, editor string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Opening %s with %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Highlight.Render(editor),
	)
}

// RenderSaved renders the message shown after the config was written.
func (r *ConfigRenderer) RenderSaved(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Saved %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderSchema renders the message shown after the schema was written.
func (r *ConfigRenderer) RenderSchema(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Schema %s\n  %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Add #:schema "+path+" to the top of config.toml for editor completion."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
