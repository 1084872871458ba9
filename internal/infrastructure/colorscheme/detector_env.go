package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector detects color scheme from the GTK_THEME environment variable.
// GTK_THEME has the form "Name" or "Name:variant", e.g. "Adwaita:dark".
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
// Returns true if GTK_THEME is set.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
// An explicit variant wins; otherwise a theme name containing "dark" means dark.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	gtkTheme := strings.ToLower(strings.TrimSpace(d.getenv("GTK_THEME")))
	if gtkTheme == "" {
		return false, false
	}

	if name, variant, found := strings.Cut(gtkTheme, ":"); found {
		switch variant {
		case "dark":
			return true, true
		case "light":
			return false, true
		}
		gtkTheme = name
	}

	return strings.Contains(gtkTheme, "dark"), true
}
