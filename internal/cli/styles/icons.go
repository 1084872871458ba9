package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher
	IconArrow     = "" //  arrow right

	// Doctor / diagnostics
	IconDoctor  = "" // stethoscope
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	// Storage / config
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconFolder   = "" // folder
	IconDesktop  = "" // desktop

	// Themes
	IconSun     = "" // sun
	IconMoon    = "" // moon
	IconAdjust  = "" // half circle (system)
	IconPalette = "" // palette

	// UI
	IconCursor = "" // chevron-right
)

// ModeIcon returns the icon for a mode or resolved theme name.
func ModeIcon(name string) string {
	switch name {
	case "light":
		return IconSun
	case "dark":
		return IconMoon
	default:
		return IconAdjust
	}
}
