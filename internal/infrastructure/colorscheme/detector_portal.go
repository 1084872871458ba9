package colorscheme

import (
	"context"
	"fmt"
	"os"

	"github.com/godbus/dbus/v5"
)

const (
	detectorNamePortal = "portal"
	priorityPortal     = 100

	portalDest        = "org.freedesktop.portal.Desktop"
	portalPath        = "/org/freedesktop/portal/desktop"
	settingsInterface = "org.freedesktop.portal.Settings"

	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"

	// Values of org.freedesktop.appearance color-scheme
	portalNoPreference = 0
	portalPreferDark   = 1
	portalPreferLight  = 2
)

// PortalDetector reads the appearance color-scheme from the XDG Desktop Portal.
// It reflects the same setting browsers use for prefers-color-scheme on Linux.
type PortalDetector struct {
	getenv func(string) string
	read   func(ctx context.Context) (dbus.Variant, error)
}

// NewPortalDetector creates a portal detector using the session bus.
func NewPortalDetector() *PortalDetector {
	return &PortalDetector{getenv: os.Getenv, read: readPortalColorScheme}
}

// Name implements port.ColorSchemeDetector.
func (*PortalDetector) Name() string { return detectorNamePortal }

// Priority implements port.ColorSchemeDetector.
func (*PortalDetector) Priority() int { return priorityPortal }

// Available implements port.ColorSchemeDetector.
// Returns true when a session bus address is known.
func (d *PortalDetector) Available() bool {
	return d.getenv("DBUS_SESSION_BUS_ADDRESS") != ""
}

// Detect implements port.ColorSchemeDetector.
// "No preference" is not an answer, so lower-priority detectors get a chance.
func (d *PortalDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
	defer cancel()

	v, err := d.read(ctx)
	if err != nil {
		return false, false
	}
	return parsePortalColorScheme(v)
}

// readPortalColorScheme queries the portal on the shared session bus connection.
func readPortalColorScheme(ctx context.Context) (dbus.Variant, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return dbus.Variant{}, fmt.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object(portalDest, portalPath)

	var v dbus.Variant
	err = obj.CallWithContext(ctx, settingsInterface+".ReadOne", 0, appearanceNamespace, colorSchemeKey).Store(&v)
	if err == nil {
		return v, nil
	}

	// Portals before version 2 only implement the deprecated Read,
	// which wraps the value in one more variant.
	if legacyErr := obj.CallWithContext(ctx, settingsInterface+".Read", 0, appearanceNamespace, colorSchemeKey).Store(&v); legacyErr != nil {
		return dbus.Variant{}, fmt.Errorf("read portal color-scheme: %w", err)
	}
	return v, nil
}

// parsePortalColorScheme unwraps a (possibly nested) variant holding the uint32 setting.
func parsePortalColorScheme(v dbus.Variant) (prefersDark, ok bool) {
	value := v.Value()
	for {
		inner, nested := value.(dbus.Variant)
		if !nested {
			break
		}
		value = inner.Value()
	}

	scheme, isUint := value.(uint32)
	if !isUint {
		return false, false
	}

	switch scheme {
	case portalPreferDark:
		return true, true
	case portalPreferLight:
		return false, true
	case portalNoPreference:
		return false, false
	}
	return false, false
}
