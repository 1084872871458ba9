package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/theme"
)

var watchJSON bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the theme as the desktop and config change",
	Long: `Keep a provider mounted and print the resolved theme on every change.

Changes come from the desktop color scheme (in system mode) and from edits
to config.toml, which remount the provider with the new options.

Examples:
  shade watch
  shade watch --json | while read -r line; do ...; done`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Output one JSON object per change")
}

func runWatch(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "watch"), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	configs := make(chan *config.Config, 1)
	app.Manager.OnConfigChange(func(cfg *config.Config) {
		offerLatest(configs, cfg)
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watching unavailable")
	}

	cfg := app.ThemeConfig()
	for {
		next, err := watchSession(ctx, app, cfg, configs)
		if err != nil || next == nil {
			return err
		}
		log.Info().Msg("config changed, remounting")
		app.Config = next
		cfg = cli.ThemeConfigFrom(next)
	}
}

// watchSession prints every change of one mounted provider. It returns the
// new config when the provider must be remounted, nil when ctx is done.
func watchSession(ctx context.Context, app *cli.App, cfg theme.Config, configs <-chan *config.Config) (*config.Config, error) {
	session, err := app.Mount(ctx, cfg, true)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	values := make(chan theme.Value, 1)
	// Runs while the provider dispatches, so it must not block.
	unsubscribe := session.Provider.Subscribe(func(v theme.Value) {
		offerLatest(values, v)
	})
	defer unsubscribe()

	if err := printWatchStatus(app, session); err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			return nil, nil
		case next := <-configs:
			return next, nil
		case <-values:
			if err := printWatchStatus(app, session); err != nil {
				return nil, err
			}
		}
	}
}

func printWatchStatus(app *cli.App, session *cli.Session) error {
	status, err := buildStatus(app, session)
	if err != nil {
		return err
	}
	if watchJSON {
		return writeJSONLine(status)
	}
	th := styles.NewTheme(session.Value().Theme)
	fmt.Printf("%s  %s\n", styles.NewStatusRenderer(th).RenderChange(status.Mode, status.Theme), th.Subtle.Render(status.Markup))
	return nil
}

// offerLatest replaces any unread value in ch with v.
func offerLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
