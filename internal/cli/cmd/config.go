package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/infrastructure/config"
)

var (
	configShowJSON     bool
	configSchemaStdout bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and the stored mode live, print or edit the config file, and generate its JSON schema.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInfo,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults and SHADE_* environment overrides were applied.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the config JSON schema",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configEditCmd)
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "Output as JSON")
	configSchemaCmd.Flags().BoolVar(&configSchemaStdout, "stdout", false, "Print the schema instead of writing it")
}

// configFilePath prefers the file the manager loaded over the XDG default.
func configFilePath() (string, error) {
	if app != nil && app.Manager != nil {
		if path := app.Manager.GetConfigFile(); path != "" {
			return path, nil
		}
	}
	return config.GetConfigFile()
}

func runConfigInfo(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := configFilePath()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderConfigInfo(path, string(app.Config.Storage.Backend), app.Config.Storage.Path))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if configShowJSON {
		return writeJSON(app.Config)
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaStdout {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	app, err := requireApp()
	if err != nil {
		return err
	}
	path, err := config.GenerateSchemaFile()
	if err != nil {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderError(err))
		return nil
	}
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderSchema(path))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	path, err := configFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	// Get editor from environment (prefer $VISUAL, fallback to $EDITOR)
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderOpening(path, editor))

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
