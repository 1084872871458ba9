package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

var setCmd = &cobra.Command{
	Use:   "set <light|dark|system>",
	Short: "Set and persist the theme mode",
	Long: `Set the theme mode. The mode is stored and the resolved theme applied.

Examples:
  shade set dark
  shade set system`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark", "system"},
	RunE:      runSet,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Long: `Switch to the opposite of the theme currently rendered.

In system mode this picks the opposite of the desktop scheme and stores it
as an explicit mode.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return changeMode(func(p *theme.Provider) {
			p.ToggleTheme(app.Ctx())
		})
	},
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Advance to the next mode (light, dark, system)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return changeMode(func(p *theme.Provider) {
			p.Cycle(app.Ctx())
		})
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(cycleCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	mode, ok := entity.ParseThemeMode(args[0])
	if !ok {
		return fmt.Errorf("unknown mode %q: must be one of light, dark, system", args[0])
	}
	if mode == entity.ThemeModeSystem && !app.Config.Theme.EnableSystem {
		return fmt.Errorf("system mode is disabled (theme.enable_system = false)")
	}
	return changeMode(func(p *theme.Provider) {
		p.SetMode(app.Ctx(), mode)
	})
}

// changeMode mounts a provider, runs change against it and prints the result.
func changeMode(change func(p *theme.Provider)) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	session, err := app.Mount(app.Ctx(), app.ThemeConfig(), false)
	if err != nil {
		return err
	}
	defer session.Close()

	change(session.Provider)

	v := session.Value()
	markup, err := session.Markup(app.Ctx())
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	th := styles.NewTheme(v.Theme)
	fmt.Println(styles.NewStatusRenderer(th).RenderChange(v.Mode.String(), v.Theme.String()))
	fmt.Println(th.Subtle.Render(strings.TrimSpace(markup)))
	return nil
}
