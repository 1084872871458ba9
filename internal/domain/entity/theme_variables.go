package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Theme CSS custom properties, expressed as HSL channel triplets so
// stylesheets can write hsl(var(--background)).
var (
	lightThemeVariables = map[string]string{
		"--background":             "0 0% 100%",
		"--foreground":             "222.2 84% 4.9%",
		"--card":                   "0 0% 100%",
		"--card-foreground":        "222.2 84% 4.9%",
		"--popover":                "0 0% 100%",
		"--popover-foreground":     "222.2 84% 4.9%",
		"--primary":                "222.2 47.4% 11.2%",
		"--primary-foreground":     "210 40% 98%",
		"--secondary":              "210 40% 96%",
		"--secondary-foreground":   "222.2 84% 4.9%",
		"--muted":                  "210 40% 96%",
		"--muted-foreground":       "215.4 16.3% 46.9%",
		"--accent":                 "210 40% 96%",
		"--accent-foreground":      "222.2 84% 4.9%",
		"--destructive":            "0 84.2% 60.2%",
		"--destructive-foreground": "210 40% 98%",
		"--border":                 "214.3 31.8% 91.4%",
		"--input":                  "214.3 31.8% 91.4%",
		"--ring":                   "222.2 84% 4.9%",
		"--radius":                 "0.5rem",
	}

	darkThemeVariables = map[string]string{
		"--background":             "222.2 84% 4.9%",
		"--foreground":             "210 40% 98%",
		"--card":                   "222.2 84% 4.9%",
		"--card-foreground":        "210 40% 98%",
		"--popover":                "222.2 84% 4.9%",
		"--popover-foreground":     "210 40% 98%",
		"--primary":                "210 40% 98%",
		"--primary-foreground":     "222.2 47.4% 11.2%",
		"--secondary":              "217.2 32.6% 17.5%",
		"--secondary-foreground":   "210 40% 98%",
		"--muted":                  "217.2 32.6% 17.5%",
		"--muted-foreground":       "215 20.2% 65.1%",
		"--accent":                 "217.2 32.6% 17.5%",
		"--accent-foreground":      "210 40% 98%",
		"--destructive":            "0 62.8% 30.6%",
		"--destructive-foreground": "210 40% 98%",
		"--border":                 "217.2 32.6% 17.5%",
		"--input":                  "217.2 32.6% 17.5%",
		"--ring":                   "212.7 26.8% 83.9%",
		"--radius":                 "0.5rem",
	}
)

// ThemeVariables returns a copy of the CSS variable table for r.
func ThemeVariables(r ResolvedTheme) map[string]string {
	src := lightThemeVariables
	if r == ThemeDark {
		src = darkThemeVariables
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// ThemeVariablesCSS renders the declarations for r, sorted by name.
func ThemeVariablesCSS(r ResolvedTheme) string {
	vars := ThemeVariables(r)
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "  %s: %s;\n", name, vars[name])
	}
	return sb.String()
}

// ThemeStyleSheet returns a stylesheet defining the light variables on :root
// and the dark overrides under .dark, matching the class attribute mode.
func ThemeStyleSheet() string {
	return fmt.Sprintf(":root{\n%s}\n\n.dark{\n%s}\n",
		ThemeVariablesCSS(ThemeLight), ThemeVariablesCSS(ThemeDark))
}
