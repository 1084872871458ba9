package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/model"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/component"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick the theme mode interactively",
	Long: `Open an interactive picker showing the icon, text and dropdown toggles.

Desktop color-scheme changes are followed while the picker is open.

Keys:
  enter/space  activate the focused toggle
  tab          focus the next toggle
  ?            full help
  q            quit`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

// isInteractiveTerminal reports whether stdout is a terminal a TUI can draw on.
func isInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func runPick(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if !isInteractiveTerminal() {
		return fmt.Errorf("pick needs an interactive terminal; use 'shade set' instead")
	}

	ctx := logging.WithComponent(app.Ctx(), "pick")
	session, err := app.Mount(ctx, app.ThemeConfig(), true)
	if err != nil {
		return err
	}
	defer session.Close()

	markup := func() string {
		out, err := session.Markup(ctx)
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("failed to render document")
			return ""
		}
		return strings.TrimSpace(out)
	}

	p := tea.NewProgram(model.NewPickerModel(ctx, session.Provider, markup))
	stop := component.Follow(session.Provider, p)
	defer stop()

	_, err = p.Run()
	return err
}
