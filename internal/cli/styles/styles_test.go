package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/build"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

func TestNewTheme_FollowsPalette(t *testing.T) {
	dark := styles.NewTheme(entity.ThemeDark)
	light := styles.NewTheme(entity.ThemeLight)

	assert.Equal(t, theme.PaletteFor(entity.ThemeDark).Background, string(dark.Background))
	assert.Equal(t, theme.PaletteFor(entity.ThemeLight).Foreground, string(light.Text))
	assert.NotEqual(t, dark.Background, light.Background)
}

func TestModeIcon(t *testing.T) {
	assert.Equal(t, styles.IconSun, styles.ModeIcon("light"))
	assert.Equal(t, styles.IconMoon, styles.ModeIcon("dark"))
	assert.Equal(t, styles.IconAdjust, styles.ModeIcon("system"))
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(entity.ThemeLight))

	out := r.RenderOpening("/tmp/shade/config.toml", "vim")
	require.Contains(t, out, "Opening")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "vim")

	out = r.RenderConfigInfo("/tmp/shade/config.toml", "memory", "/ignored")
	require.Contains(t, out, "memory")
	require.NotContains(t, out, "/ignored")

	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestStatusRenderer(t *testing.T) {
	r := styles.NewStatusRenderer(styles.NewTheme(entity.ThemeDark))

	out := r.Render(styles.Status{
		Mode:        "system",
		Theme:       "dark",
		SystemTheme: "dark",
		Modes:       []string{"light", "dark", "system"},
		Markup:      `<html class="dark">`,
	})
	assert.Contains(t, out, "system")
	assert.Contains(t, out, "(default)")
	assert.Contains(t, out, `<html class="dark">`)

	assert.Contains(t, r.RenderChange("light", "light"), "light")
}

func TestDoctorRenderer(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme(entity.ThemeLight))

	out := r.Render(styles.DoctorReport{
		Source:      "gsettings",
		PrefersDark: true,
		Detectors: []styles.DoctorDetector{
			{Name: "portal", Priority: 100, Available: false},
			{Name: "gsettings", Priority: 10, Available: true, Detected: true, PrefersDark: true},
			{Name: "terminal", Priority: 1, Available: true},
		},
	})
	assert.Contains(t, out, "via gsettings")
	assert.Contains(t, out, "unavailable")
	assert.Contains(t, out, "no answer")

	forced := r.Render(styles.DoctorReport{Forced: "dark", PrefersDark: true})
	assert.Contains(t, forced, "forced by config")
	assert.Contains(t, forced, "No detectors registered")
}

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(entity.ThemeDark))
	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25"})
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, build.RepoURL())
}

func TestPickerKeyMap(t *testing.T) {
	km := styles.DefaultPickerKeyMap()
	assert.Len(t, km.ShortHelp(), 3)
	assert.Len(t, km.FullHelp(), 2)
}
