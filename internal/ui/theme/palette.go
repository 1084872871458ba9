package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/shade/internal/domain/entity"
)

// Palette holds the theme's semantic colors as hex strings, for renderers
// that cannot read CSS variables (terminal widgets, previews).
type Palette struct {
	Background        string
	Foreground        string
	Card              string
	Primary           string
	PrimaryForeground string
	Secondary         string
	Muted             string
	MutedForeground   string
	Accent            string
	AccentForeground  string
	Destructive       string
	Border            string
	Ring              string
}

// PaletteFor converts the CSS variable table of theme to hex colors.
func PaletteFor(theme entity.ResolvedTheme) Palette {
	vars := entity.ThemeVariables(theme)
	hex := func(name string) string {
		c, err := ParseHSL(vars[name])
		if err != nil {
			return ""
		}
		return c.Hex()
	}

	return Palette{
		Background:        hex("--background"),
		Foreground:        hex("--foreground"),
		Card:              hex("--card"),
		Primary:           hex("--primary"),
		PrimaryForeground: hex("--primary-foreground"),
		Secondary:         hex("--secondary"),
		Muted:             hex("--muted"),
		MutedForeground:   hex("--muted-foreground"),
		Accent:            hex("--accent"),
		AccentForeground:  hex("--accent-foreground"),
		Destructive:       hex("--destructive"),
		Border:            hex("--border"),
		Ring:              hex("--ring"),
	}
}

// ParseHSL parses a CSS channel triplet such as "222.2 84% 4.9%".
func ParseHSL(triplet string) (colorful.Color, error) {
	fields := strings.Fields(triplet)
	if len(fields) != 3 {
		return colorful.Color{}, fmt.Errorf("invalid hsl triplet %q", triplet)
	}

	h, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hue in %q: %w", triplet, err)
	}
	s, err := parsePercent(fields[1])
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid saturation in %q: %w", triplet, err)
	}
	l, err := parsePercent(fields[2])
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid lightness in %q: %w", triplet, err)
	}
	return colorful.Hsl(h, s, l).Clamped(), nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB, #RRGGBBAA).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %q", color)
	}
	return nil
}

// Validate checks all palette colors are valid hex values.
func (p Palette) Validate() error {
	colors := map[string]string{
		"background":  p.Background,
		"foreground":  p.Foreground,
		"card":        p.Card,
		"primary":     p.Primary,
		"secondary":   p.Secondary,
		"muted":       p.Muted,
		"accent":      p.Accent,
		"destructive": p.Destructive,
		"border":      p.Border,
		"ring":        p.Ring,
	}

	for name, color := range colors {
		if err := ValidateHexColor(color); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
