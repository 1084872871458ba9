package colorscheme

import (
	"os/exec"
	"runtime"
	"strings"
)

const (
	detectorNameDefaults = "defaults"
	priorityDefaults     = 15
)

// DefaultsDetector reads AppleInterfaceStyle on macOS.
type DefaultsDetector struct {
	goos string
	run  commandRunner
	look lookPath
}

// NewDefaultsDetector creates a macOS detector.
func NewDefaultsDetector() *DefaultsDetector {
	return &DefaultsDetector{goos: runtime.GOOS, run: execOutput, look: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*DefaultsDetector) Name() string { return detectorNameDefaults }

// Priority implements port.ColorSchemeDetector.
func (*DefaultsDetector) Priority() int { return priorityDefaults }

// Available implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Available() bool {
	if d.goos != "darwin" {
		return false
	}
	_, err := d.look("defaults")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// The key is absent in light mode, so a failed read means light.
func (d *DefaultsDetector) Detect() (prefersDark, ok bool) {
	output, err := runWithTimeout(d.run, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		return false, true
	}
	return strings.EqualFold(strings.TrimSpace(string(output)), "dark"), true
}
