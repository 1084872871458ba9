package port

import "github.com/bnema/shade/internal/domain/entity"

// ColorSchemePreference represents the resolved operating-system color scheme.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	Source string
}

// Theme returns the concrete theme matching the preference.
func (p ColorSchemePreference) Theme() entity.ResolvedTheme {
	if p.PrefersDark {
		return entity.ThemeDark
	}
	return entity.ThemeLight
}

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 100+: Desktop portal
	//   -  10+: Desktop settings and environment (gsettings, GTK_THEME)
	//   -   0+: Heuristics (terminal background)
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver resolves the effective color scheme preference.
type ColorSchemeResolver interface {
	// Resolve returns the current color scheme preference.
	// It checks for a forced scheme, then queries detectors by priority.
	// If all detectors fail, defaults to light.
	Resolve() ColorSchemePreference

	// RegisterDetector adds a detector to the resolver.
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh forces re-evaluation of the color scheme and returns it.
	Refresh() ColorSchemePreference

	// OnChange registers a callback invoked when Refresh() observes a
	// different preference. Returns a function to unregister the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}

// SystemScheme is the media-query view of the OS preference used by hosts:
// a current value plus change notifications.
type SystemScheme interface {
	// Current returns the live OS preference.
	Current() entity.ResolvedTheme

	// Subscribe invokes callback with the new theme on every change.
	// The returned function removes the subscription; after it returns no
	// further callback is delivered. Calling it more than once is a no-op.
	Subscribe(callback func(entity.ResolvedTheme)) (unsubscribe func())
}
