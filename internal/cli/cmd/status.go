package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/infrastructure/preference"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current mode and resolved theme",
	Long: `Show the stored mode, the theme it resolves to, the desktop color scheme
and the document root the theme produces.

Examples:
  shade status
  shade status --json | jq -r .theme`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
}

func runStatus(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	session, err := app.Mount(app.Ctx(), app.ThemeConfig(), false)
	if err != nil {
		return err
	}
	defer session.Close()

	status, err := buildStatus(app, session)
	if err != nil {
		return err
	}

	if statusJSON {
		return writeJSON(status)
	}
	fmt.Println(styles.NewStatusRenderer(app.Theme).Render(status))
	return nil
}

func buildStatus(app *cli.App, session *cli.Session) (styles.Status, error) {
	ctx := app.Ctx()
	v := session.Value()

	markup, err := session.Markup(ctx)
	if err != nil {
		return styles.Status{}, fmt.Errorf("render document: %w", err)
	}

	cfg := session.Provider.Config()
	_, stored := preference.GetStored(ctx, cfg.StorageKey, app.Backend)

	modes := make([]string, 0, len(v.Modes))
	for _, m := range v.Modes {
		modes = append(modes, m.String())
	}

	return styles.Status{
		Mode:        v.Mode.String(),
		Theme:       v.Theme.String(),
		SystemTheme: v.SystemTheme.String(),
		Modes:       modes,
		Stored:      stored,
		StorageKey:  cfg.StorageKey,
		Backend:     string(app.Config.Storage.Backend),
		Markup:      markup,
	}, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONLine(v any) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}
