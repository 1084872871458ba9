package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

var (
	cssTheme   string
	cssPalette bool
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the theme stylesheet",
	Long: `Print the CSS custom properties of both themes: light on :root and dark
under .dark, ready for class attribute mode.

Examples:
  shade css > theme.css
  shade css --theme dark
  shade css --theme dark --palette`,
	Args: cobra.NoArgs,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.Flags().StringVar(&cssTheme, "theme", "", "Only print one theme (light or dark)")
	cssCmd.Flags().BoolVar(&cssPalette, "palette", false, "Print the theme's colors as hex JSON")
}

func runCSS(_ *cobra.Command, _ []string) error {
	if cssTheme == "" {
		if cssPalette {
			return writeJSON(map[string]theme.Palette{
				entity.ThemeLight.String(): theme.PaletteFor(entity.ThemeLight),
				entity.ThemeDark.String():  theme.PaletteFor(entity.ThemeDark),
			})
		}
		fmt.Print(entity.ThemeStyleSheet())
		return nil
	}

	resolved, ok := entity.ParseResolvedTheme(cssTheme)
	if !ok {
		return fmt.Errorf("unknown theme %q: must be light or dark", cssTheme)
	}
	if cssPalette {
		return writeJSON(theme.PaletteFor(resolved))
	}
	fmt.Printf(":root{\n%s}\n", entity.ThemeVariablesCSS(resolved))
	return nil
}
