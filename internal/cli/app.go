// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/build"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/colorscheme"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shade/internal/infrastructure/persistence/statefile"
	"github.com/bnema/shade/internal/infrastructure/preference"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/theme"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Backend persists the chosen mode.
	Backend port.PreferenceBackend
	// Resolver detects the desktop color scheme.
	Resolver *colorscheme.Resolver
	// Scheme follows the desktop color scheme while subscribed.
	Scheme *colorscheme.Listener

	// Context with logger
	ctx     context.Context
	closers []func() error
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	// A local .env may carry SHADE_* overrides during development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// The config decides the final logger; until it is loaded only SHADE_LOG_* apply.
	mgr, err := config.NewManager(config.WithLogger(logging.NewFromEnv()))
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	loadErr := mgr.Load()
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level, zerolog.WarnLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		// Keep going on defaults so status and config commands still work.
		logger.Warn().Err(loadErr).Msg("failed to load config, using defaults")
	}

	a := &App{
		Config:  cfg,
		Manager: mgr,
		ctx:     ctx,
	}

	backend, err := a.openBackend(cfg.Storage)
	if err != nil {
		return nil, err
	}
	a.Backend = backend

	a.Resolver = colorscheme.NewDefaultResolver(colorscheme.NewConfigAdapter(cfg))
	a.Scheme = colorscheme.NewListener(ctx, a.Resolver, colorscheme.DefaultSource(
		time.Duration(cfg.System.DebounceMs)*time.Millisecond,
		time.Duration(cfg.System.PollIntervalMs)*time.Millisecond,
	))

	a.Theme = styles.NewTheme(a.renderedTheme())

	logger.Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Str("path", cfg.Storage.Path).
		Msg("cli initialized")

	return a, nil
}

// openBackend creates the preference backend selected by the config.
func (a *App) openBackend(cfg config.StorageConfig) (port.PreferenceBackend, error) {
	switch cfg.Backend {
	case config.StorageSQLite:
		lazy := sqlite.NewLazyDB(cfg.Path)
		a.closers = append(a.closers, lazy.Close)
		return sqlite.NewPreferenceRepository(lazy), nil
	case config.StorageMemory:
		return preference.NewMemory(), nil
	default:
		store, err := statefile.New(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open state file: %w", err)
		}
		return store, nil
	}
}

// renderedTheme resolves the stored mode so CLI colors match the managed theme.
func (a *App) renderedTheme() entity.ResolvedTheme {
	mode, ok := preference.GetStored(a.ctx, a.Config.Theme.StorageKey, a.Backend)
	if !ok {
		mode = entity.ThemeMode(a.Config.Theme.DefaultMode)
	}
	return entity.ResolveThemeWith(mode, func() entity.ResolvedTheme {
		return a.Resolver.Resolve().Theme()
	})
}

// ThemeConfig maps the loaded configuration to provider options.
func (a *App) ThemeConfig() theme.Config {
	return ThemeConfigFrom(a.Config)
}

// ThemeConfigFrom maps a configuration to provider options.
func ThemeConfigFrom(cfg *config.Config) theme.Config {
	return theme.Config{
		DefaultMode:        entity.ThemeMode(cfg.Theme.DefaultMode),
		StorageKey:         cfg.Theme.StorageKey,
		Attribute:          cfg.Theme.Attribute,
		Themes:             cfg.Theme.Themes,
		DisableTransitions: cfg.Theme.DisableTransitions,
		EnableSystem:       cfg.Theme.EnableSystem,
	}
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
