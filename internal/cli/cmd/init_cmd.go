package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/infrastructure/config"
)

var initDefaults bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the config file interactively",
	Long: `Walk through the main options and write config.toml.

Use --defaults to write the default configuration without prompting.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "Write the default configuration without prompting")
}

// newInitKeyMap keeps default Huh bindings and adds q as a quit key.
func newInitKeyMap() *huh.KeyMap {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	)
	return keyMap
}

func runInit(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	cfg := app.Config.Clone()
	if initDefaults {
		cfg = config.DefaultConfig()
	} else {
		if !isInteractiveTerminal() {
			return fmt.Errorf("init needs an interactive terminal; use --defaults")
		}
		backend := string(cfg.Storage.Backend)
		if err := initForm(cfg, &backend).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if config.StorageBackend(backend) != cfg.Storage.Backend {
			// The old path belongs to the previous backend.
			cfg.Storage.Backend = config.StorageBackend(backend)
			cfg.Storage.Path = ""
		}
	}

	if err := app.Manager.Save(cfg); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	path, err := configFilePath()
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderSaved(path))
	return nil
}

// initForm binds the prompts directly to cfg and backend.
func initForm(cfg *config.Config, backend *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default mode").
				Description("Used until a mode is chosen").
				Options(
					huh.NewOption("System (follow the desktop)", "system"),
					huh.NewOption("Light", "light"),
					huh.NewOption("Dark", "dark"),
				).
				Value(&cfg.Theme.DefaultMode),

			huh.NewConfirm().
				Title("Offer system mode").
				Description("Follow desktop color-scheme changes").
				Value(&cfg.Theme.EnableSystem),

			huh.NewInput().
				Title("Root attribute").
				Description(`"class" or an attribute name such as data-theme`).
				Placeholder("class").
				Value(&cfg.Theme.Attribute),

			huh.NewConfirm().
				Title("Disable transitions").
				Description("Suppress CSS transitions while the theme swaps").
				Value(&cfg.Theme.DisableTransitions),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Storage key").
				Description("Key the chosen mode is stored under").
				Value(&cfg.Theme.StorageKey),

			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("State file (TOML)", string(config.StorageFile)),
					huh.NewOption("SQLite", string(config.StorageSQLite)),
					huh.NewOption("Memory (not persisted)", string(config.StorageMemory)),
				).
				Value(backend),
		),
	).WithKeyMap(newInitKeyMap()).WithShowHelp(true)
}
