package entity

import "strings"

// ThemeMode is the user-facing theme preference.
// ThemeModeSystem is indirect: it follows the operating system.
type ThemeMode string

const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

// ResolvedTheme is the concrete, renderable theme. It is never "system".
type ResolvedTheme string

const (
	ThemeLight ResolvedTheme = "light"
	ThemeDark  ResolvedTheme = "dark"
)

// themeCycle is the fixed order used by NextThemeMode.
var themeCycle = [...]ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeSystem}

// Valid reports whether m is one of the known modes.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeModeLight, ThemeModeDark, ThemeModeSystem:
		return true
	}
	return false
}

func (m ThemeMode) String() string { return string(m) }

// Valid reports whether r is light or dark.
func (r ResolvedTheme) Valid() bool {
	return r == ThemeLight || r == ThemeDark
}

// Opposite returns dark for light and light for anything else.
func (r ResolvedTheme) Opposite() ResolvedTheme {
	if r == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (r ResolvedTheme) String() string { return string(r) }

// ParseThemeMode parses a mode name, case-insensitively.
func ParseThemeMode(s string) (ThemeMode, bool) {
	m := ThemeMode(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Valid()
}

// ParseResolvedTheme parses a concrete theme name, case-insensitively.
func ParseResolvedTheme(s string) (ResolvedTheme, bool) {
	r := ResolvedTheme(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// ResolveTheme maps a mode to a concrete theme. system is the live OS
// preference and is only consulted when mode is ThemeModeSystem.
func ResolveTheme(mode ThemeMode, system ResolvedTheme) ResolvedTheme {
	return ResolveThemeWith(mode, func() ResolvedTheme { return system })
}

// ResolveThemeWith is ResolveTheme with a lazily queried OS preference.
// An OS query returning something other than light or dark resolves to light.
func ResolveThemeWith(mode ThemeMode, system func() ResolvedTheme) ResolvedTheme {
	switch mode {
	case ThemeModeLight:
		return ThemeLight
	case ThemeModeDark:
		return ThemeDark
	}
	if mode == ThemeModeSystem && system != nil {
		if r := system(); r.Valid() {
			return r
		}
	}
	return ThemeLight
}

// NextThemeMode returns the successor of mode in light -> dark -> system -> light.
// Unknown modes restart the cycle at light.
func NextThemeMode(mode ThemeMode) ThemeMode {
	for i, m := range themeCycle {
		if m == mode {
			return themeCycle[(i+1)%len(themeCycle)]
		}
	}
	return ThemeModeLight
}

// ToggleLightDark returns the mode opposite to what mode currently renders as.
// The result is never ThemeModeSystem.
func ToggleLightDark(mode ThemeMode, system ResolvedTheme) ThemeMode {
	if ResolveTheme(mode, system) == ThemeLight {
		return ThemeModeDark
	}
	return ThemeModeLight
}

// EnabledThemeModes lists the modes a provider offers.
func EnabledThemeModes(enableSystem bool) []ThemeMode {
	if enableSystem {
		return []ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeSystem}
	}
	return []ThemeMode{ThemeModeLight, ThemeModeDark}
}

// NextEnabledThemeMode advances current within modes, wrapping at the end.
// A current mode missing from modes lands on the first entry.
func NextEnabledThemeMode(modes []ThemeMode, current ThemeMode) ThemeMode {
	if len(modes) == 0 {
		return NextThemeMode(current)
	}
	for i, m := range modes {
		if m == current {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
