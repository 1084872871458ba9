package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/preference"
)

var (
	previewMode      string
	previewAttribute string
	previewJSON      bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a mode without storing it",
	Long: `Mount a provider on scratch storage, optionally switch mode or
attribute, and print the resulting document root. Nothing is persisted.

Examples:
  shade preview --mode dark
  shade preview --mode system --attribute data-theme`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewMode, "mode", "", "Mode to preview (light, dark, system)")
	previewCmd.Flags().StringVar(&previewAttribute, "attribute", "", "Override the root attribute (class or e.g. data-theme)")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "Output as JSON")
}

func runPreview(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	cfg := app.ThemeConfig()
	cfg.Storage = preference.NewMemory()
	if previewAttribute != "" {
		cfg.Attribute = previewAttribute
	}
	if previewMode != "" {
		mode, ok := entity.ParseThemeMode(previewMode)
		if !ok {
			return fmt.Errorf("unknown mode %q: must be one of light, dark, system", previewMode)
		}
		cfg.DefaultMode = mode
	}

	session, err := app.Mount(app.Ctx(), cfg, false)
	if err != nil {
		return err
	}
	defer session.Close()

	status, err := buildStatus(app, session)
	if err != nil {
		return err
	}
	status.Backend = "preview"
	status.Stored = false

	if previewJSON {
		return writeJSON(status)
	}
	fmt.Println(styles.NewStatusRenderer(styles.NewTheme(session.Value().Theme)).Render(status))
	return nil
}
