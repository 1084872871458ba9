package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10

	gnomeInterfaceSchema = "org.gnome.desktop.interface"
)

// GsettingsDetector detects color scheme from GNOME gsettings.
// It reads color-scheme (GNOME 42+) and falls back to the gtk-theme name.
type GsettingsDetector struct {
	run  commandRunner
	look lookPath
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: execOutput, look: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if the gsettings command is available.
func (d *GsettingsDetector) Available() bool {
	_, err := d.look("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	if scheme, err := d.get("color-scheme"); err == nil {
		switch scheme {
		case "prefer-dark":
			return true, true
		case "prefer-light":
			return false, true
		}
	}

	// "default" or an older GNOME: guess from the theme name
	name, err := d.get("gtk-theme")
	if err != nil || name == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(name), "dark"), true
}

func (d *GsettingsDetector) get(key string) (string, error) {
	output, err := runWithTimeout(d.run, "gsettings", "get", gnomeInterfaceSchema, key)
	if err != nil {
		return "", err
	}
	// Output is like "'prefer-dark'\n"
	result := strings.TrimSpace(string(output))
	return strings.Trim(result, "'\""), nil
}
