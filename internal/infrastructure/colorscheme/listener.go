package colorscheme

import (
	"context"
	"sync"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// Compile-time interface check.
var _ port.SystemScheme = (*Listener)(nil)

// Listener exposes a resolver as a port.SystemScheme. The change source runs
// only while at least one subscription is active.
type Listener struct {
	ctx      context.Context
	resolver port.ColorSchemeResolver
	source   Source

	mu      sync.Mutex
	subs    int
	stopSrc func()
}

// NewListener creates a listener. source may be nil, in which case changes
// are only observed when something calls the resolver's Refresh.
func NewListener(ctx context.Context, resolver port.ColorSchemeResolver, source Source) *Listener {
	return &Listener{
		ctx:      logging.WithComponent(ctx, "colorscheme"),
		resolver: resolver,
		source:   source,
	}
}

// Current implements port.SystemScheme.
// It re-runs detection, so subscribers see a change noticed here too.
func (l *Listener) Current() entity.ResolvedTheme {
	return l.resolver.Refresh().Theme()
}

// Subscribe implements port.SystemScheme.
func (l *Listener) Subscribe(callback func(entity.ResolvedTheme)) func() {
	sub := &subscription{fn: callback, active: true}
	unregister := l.resolver.OnChange(func(pref port.ColorSchemePreference) {
		sub.deliver(pref.Theme())
	})
	l.acquire()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.cancel()
			unregister()
			l.release()
		})
	}
}

// Active returns the number of live subscriptions.
func (l *Listener) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subs
}

func (l *Listener) acquire() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subs++
	if l.subs > 1 || l.source == nil {
		return
	}

	stop, err := l.source(l.ctx, l.refresh)
	if err != nil {
		logging.FromContext(l.ctx).Debug().Err(err).Msg("color scheme: change source unavailable")
		return
	}
	l.stopSrc = stop
}

func (l *Listener) release() {
	l.mu.Lock()
	if l.subs > 0 {
		l.subs--
	}
	var stop func()
	if l.subs == 0 {
		stop = l.stopSrc
		l.stopSrc = nil
	}
	l.mu.Unlock()

	// The source may be waiting on a refresh that needs the resolver, so
	// it is stopped without holding the listener lock.
	if stop != nil {
		stop()
	}
}

func (l *Listener) refresh() {
	pref := l.resolver.Refresh()
	logging.FromContext(l.ctx).Debug().
		Bool("prefers_dark", pref.PrefersDark).
		Str("source", pref.Source).
		Msg("color scheme refreshed")
}

// subscription gates deliveries so none happens once cancel has returned.
// cancel must not be called from inside the callback.
type subscription struct {
	mu     sync.Mutex
	fn     func(entity.ResolvedTheme)
	active bool
}

func (s *subscription) deliver(theme entity.ResolvedTheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active && s.fn != nil {
		s.fn(theme)
	}
}

func (s *subscription) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}
