package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTheme_ConcreteModes(t *testing.T) {
	for _, system := range []ResolvedTheme{ThemeLight, ThemeDark} {
		assert.Equal(t, ThemeLight, ResolveTheme(ThemeModeLight, system))
		assert.Equal(t, ThemeDark, ResolveTheme(ThemeModeDark, system))
	}
}

func TestResolveTheme_SystemFollowsOS(t *testing.T) {
	assert.Equal(t, ThemeDark, ResolveTheme(ThemeModeSystem, ThemeDark))
	assert.Equal(t, ThemeLight, ResolveTheme(ThemeModeSystem, ThemeLight))
}

func TestResolveThemeWith_QueriesOnlyForSystem(t *testing.T) {
	calls := 0
	query := func() ResolvedTheme {
		calls++
		return ThemeDark
	}

	assert.Equal(t, ThemeLight, ResolveThemeWith(ThemeModeLight, query))
	assert.Equal(t, 0, calls)

	assert.Equal(t, ThemeDark, ResolveThemeWith(ThemeModeSystem, query))
	assert.Equal(t, 1, calls)
}

func TestResolveThemeWith_InvalidOSAnswerFallsBackToLight(t *testing.T) {
	assert.Equal(t, ThemeLight, ResolveThemeWith(ThemeModeSystem, func() ResolvedTheme { return "system" }))
	assert.Equal(t, ThemeLight, ResolveThemeWith(ThemeModeSystem, nil))
}

func TestNextThemeMode(t *testing.T) {
	tests := []struct {
		in   ThemeMode
		want ThemeMode
	}{
		{ThemeModeLight, ThemeModeDark},
		{ThemeModeDark, ThemeModeSystem},
		{ThemeModeSystem, ThemeModeLight},
		{"sepia", ThemeModeLight},
		{"", ThemeModeLight},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NextThemeMode(tt.in))
		})
	}
}

func TestNextThemeMode_CycleLengthIsThree(t *testing.T) {
	for _, m := range []ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeSystem} {
		assert.Equal(t, m, NextThemeMode(NextThemeMode(NextThemeMode(m))))
		assert.NotEqual(t, m, NextThemeMode(m))
	}
}

func TestToggleLightDark(t *testing.T) {
	assert.Equal(t, ThemeModeDark, ToggleLightDark(ThemeModeLight, ThemeDark))
	assert.Equal(t, ThemeModeLight, ToggleLightDark(ThemeModeDark, ThemeLight))
	assert.Equal(t, ThemeModeLight, ToggleLightDark(ThemeModeSystem, ThemeDark))
	assert.Equal(t, ThemeModeDark, ToggleLightDark(ThemeModeSystem, ThemeLight))
}

func TestToggleLightDark_NeverSystem(t *testing.T) {
	for _, m := range []ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeSystem, "bogus"} {
		for _, sys := range []ResolvedTheme{ThemeLight, ThemeDark} {
			assert.NotEqual(t, ThemeModeSystem, ToggleLightDark(m, sys))
		}
	}
}

func TestEnabledThemeModes(t *testing.T) {
	assert.Equal(t, []ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeSystem}, EnabledThemeModes(true))
	assert.Equal(t, []ThemeMode{ThemeModeLight, ThemeModeDark}, EnabledThemeModes(false))
}

func TestNextEnabledThemeMode(t *testing.T) {
	withSystem := EnabledThemeModes(true)
	withoutSystem := EnabledThemeModes(false)

	assert.Equal(t, ThemeModeDark, NextEnabledThemeMode(withSystem, ThemeModeLight))
	assert.Equal(t, ThemeModeSystem, NextEnabledThemeMode(withSystem, ThemeModeDark))
	assert.Equal(t, ThemeModeLight, NextEnabledThemeMode(withSystem, ThemeModeSystem))

	assert.Equal(t, ThemeModeLight, NextEnabledThemeMode(withoutSystem, ThemeModeDark))
	// system is not offered, so cycling restarts at the first entry
	assert.Equal(t, ThemeModeLight, NextEnabledThemeMode(withoutSystem, ThemeModeSystem))

	assert.Equal(t, ThemeModeDark, NextEnabledThemeMode(nil, ThemeModeLight))
}

func TestParseThemeMode(t *testing.T) {
	m, ok := ParseThemeMode(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, ThemeModeDark, m)

	_, ok = ParseThemeMode("prefer-dark")
	assert.False(t, ok)
}

func TestParseResolvedTheme(t *testing.T) {
	r, ok := ParseResolvedTheme("LIGHT")
	assert.True(t, ok)
	assert.Equal(t, ThemeLight, r)

	_, ok = ParseResolvedTheme("system")
	assert.False(t, ok)
}

func TestResolvedTheme_Opposite(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Opposite())
	assert.Equal(t, ThemeLight, ThemeDark.Opposite())
}

func TestThemeVariables_ReturnsCopy(t *testing.T) {
	vars := ThemeVariables(ThemeDark)
	assert.Equal(t, "222.2 84% 4.9%", vars["--background"])

	vars["--background"] = "mutated"
	assert.Equal(t, "222.2 84% 4.9%", ThemeVariables(ThemeDark)["--background"])
}

func TestThemeStyleSheet(t *testing.T) {
	css := ThemeStyleSheet()

	assert.True(t, strings.HasPrefix(css, ":root{\n"))
	assert.Contains(t, css, ".dark{\n")
	assert.Contains(t, css, "  --background: 0 0% 100%;\n")
	assert.Contains(t, css, "  --ring: 212.7 26.8% 83.9%;\n")
}
