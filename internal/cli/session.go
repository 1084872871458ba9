package cli

import (
	"context"
	"fmt"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/colorscheme"
	"github.com/bnema/shade/internal/infrastructure/dom"
	"github.com/bnema/shade/internal/infrastructure/frame"
	"github.com/bnema/shade/internal/infrastructure/host"
	"github.com/bnema/shade/internal/infrastructure/jsruntime"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/theme"
)

// Session is a theme provider mounted on a headless page.
type Session struct {
	Provider *theme.Provider
	Page     *jsruntime.Page

	frames   *frame.Queue
	stopSync func()
}

// Mount creates a headless page seeded with the desktop color scheme and
// mounts a provider on it. With follow set, desktop changes are forwarded
// to the page's prefers-color-scheme query until the session is closed.
func (a *App) Mount(ctx context.Context, cfg theme.Config, follow bool) (*Session, error) {
	snapshot := colorscheme.SnapshotOf(a.Resolver)
	frames := frame.NewQueue()

	page, err := jsruntime.NewPage(
		jsruntime.WithFrames(frames),
		jsruntime.WithPrefersDark(snapshot.Current() == entity.ThemeDark),
	)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	s := &Session{
		Page:     page,
		frames:   frames,
		stopSync: func() {},
	}

	if follow {
		log := logging.FromContext(ctx)
		s.stopSync = a.Scheme.Subscribe(func(system entity.ResolvedTheme) {
			log.Debug().Str("system", system.String()).Msg("desktop color scheme changed")
			if err := page.SetPrefersDark(ctx, system == entity.ThemeDark); err != nil {
				log.Warn().Err(err).Msg("failed to forward color scheme to page")
			}
		})
	}

	s.Provider = theme.Mount(ctx, cfg, host.Env{
		Document: dom.NewScript(page),
		Frames:   frames,
		Scheme:   page.Scheme(),
		Storage:  a.Backend,
	})
	return s, nil
}

// Value returns the provider's current value.
func (s *Session) Value() theme.Value {
	return s.Provider.Value()
}

// Markup runs pending frames and renders the page root.
func (s *Session) Markup(ctx context.Context) (string, error) {
	s.frames.Flush()
	return s.Page.Markup(ctx)
}

// Close stops following the desktop and unmounts the provider.
func (s *Session) Close() {
	s.stopSync()
	s.Provider.Unmount()
}
