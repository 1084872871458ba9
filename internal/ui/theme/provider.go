// Package theme holds the theme context: the per-mount state machine that
// tracks the user's mode, follows the host's color-scheme preference and
// applies the resolved theme to the document.
package theme

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/host"
	"github.com/bnema/shade/internal/infrastructure/preference"
	"github.com/bnema/shade/internal/logging"
)

// DefaultStorageKey is the preference key used when Config.StorageKey is empty.
const DefaultStorageKey = "psr-theme"

// Config is fixed for the lifetime of a provider.
type Config struct {
	// DefaultMode applies when nothing is stored.
	DefaultMode entity.ThemeMode
	// StorageKey is the preference key holding the mode.
	StorageKey string
	// Attribute is "class" or the root attribute receiving the theme.
	Attribute string
	// Themes maps a resolved theme to the value written to the root.
	Themes map[string]string
	// DisableTransitions suppresses CSS transitions during a swap.
	DisableTransitions bool
	// EnableSystem offers the system mode and follows host preference changes.
	EnableSystem bool
	// Storage overrides the host's preference backend.
	Storage port.PreferenceBackend
}

// DefaultConfig returns the configuration used when nothing is customized.
func DefaultConfig() Config {
	return Config{
		DefaultMode:  entity.ThemeModeSystem,
		StorageKey:   DefaultStorageKey,
		Attribute:    host.AttributeClass,
		Themes:       map[string]string{},
		EnableSystem: true,
	}
}

// normalized fills empty fields with defaults and detaches the Themes map.
func (c Config) normalized() Config {
	if !c.DefaultMode.Valid() {
		c.DefaultMode = entity.ThemeModeSystem
	}
	if c.StorageKey == "" {
		c.StorageKey = DefaultStorageKey
	}
	if c.Attribute == "" {
		c.Attribute = host.AttributeClass
	}
	themes := make(map[string]string, len(c.Themes))
	maps.Copy(themes, c.Themes)
	c.Themes = themes
	return c
}

// origin records what caused a transition.
type origin int

const (
	originSetMode origin = iota
	originSystem
)

func (o origin) String() string {
	if o == originSystem {
		return "system"
	}
	return "set_mode"
}

// state is the provider's session state. The resolved theme is derived.
type state struct {
	mode    entity.ThemeMode
	system  entity.ResolvedTheme
	loading bool
}

func (s state) theme() entity.ResolvedTheme {
	return entity.ResolveTheme(s.mode, s.system)
}

// transition is what observers see after each state change.
type transition struct {
	prev, next state
	origin     origin
}

// observer reacts to a transition. Observers run in registration order on
// the goroutine that caused the transition, one transition at a time.
type observer func(ctx context.Context, t transition)

// Provider is one mounted theme context. Nested or sibling providers are
// independent of each other.
type Provider struct {
	ctx     context.Context
	cfg     Config
	env     host.Env
	storage port.PreferenceBackend
	modes   []entity.ThemeMode

	// dispatch serializes transitions and observer runs.
	dispatch sync.Mutex

	mu        sync.RWMutex
	st        state
	observers []observer
	subs      map[int]func(Value)
	nextSub   int
	// pending holds values not yet delivered; delivering marks the
	// goroutine currently draining it.
	pending    []Value
	delivering bool
	unmounted bool
	unwatch   func()
}

// Mount creates a provider and runs initialization: on a host the stored
// mode (or the default) and the host preference are read and the theme is
// applied before the provider reports ready.
func Mount(ctx context.Context, cfg Config, env host.Env) *Provider {
	cfg = cfg.normalized()
	ctx = logging.WithStorageKey(logging.WithComponent(ctx, "theme"), cfg.StorageKey)
	log := logging.FromContext(ctx)

	storage := cfg.Storage
	if storage == nil {
		storage = env.Storage
	}

	p := &Provider{
		ctx:     context.WithoutCancel(ctx),
		cfg:     cfg,
		env:     env,
		storage: storage,
		modes:   entity.EnabledThemeModes(cfg.EnableSystem),
		st:      state{mode: cfg.DefaultMode, system: entity.ThemeLight, loading: true},
		subs:    make(map[int]func(Value)),
	}
	p.observers = []observer{p.applyOnThemeChange, p.persistOnSetMode}

	if !env.Available() {
		p.st.loading = false
		log.Debug().Str("mode", p.st.mode.String()).Msg("theme provider mounted without host")
		return p
	}

	mode := cfg.DefaultMode
	if stored, ok := preference.GetStored(ctx, cfg.StorageKey, storage); ok {
		mode = stored
	}

	// Watch before reading so a flip between the two is not lost. Flips
	// delivered from now on wait for dispatch and land on the initial state.
	if cfg.EnableSystem {
		unwatch := host.ListenSystemTheme(env, p.onSystemTheme)
		p.mu.Lock()
		p.unwatch = unwatch
		p.mu.Unlock()
	}

	p.dispatch.Lock()
	system := host.SystemTheme(env)
	initial := state{mode: mode, system: system}
	host.Apply(ctx, env, initial.theme(), p.applyOptions())
	p.mu.Lock()
	p.st = initial
	p.mu.Unlock()
	p.dispatch.Unlock()

	log.Debug().
		Str("mode", mode.String()).
		Str("system", system.String()).
		Str("theme", initial.theme().String()).
		Msg("theme provider mounted")
	return p
}

// Config returns the provider's configuration.
func (p *Provider) Config() Config {
	cfg := p.cfg
	cfg.Themes = maps.Clone(p.cfg.Themes)
	return cfg
}

// Value returns a snapshot of the context value.
func (p *Provider) Value() Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.valueLocked()
}

func (p *Provider) valueLocked() Value {
	return Value{
		Mode:        p.st.mode,
		Theme:       p.st.theme(),
		SystemTheme: p.st.system,
		Modes:       slices.Clone(p.modes),
		IsLoading:   p.st.loading,
		provider:    p,
	}
}

// SetMode changes the mode and persists it. The document follows through
// the theme-change observer.
func (p *Provider) SetMode(ctx context.Context, mode entity.ThemeMode) {
	if !mode.Valid() {
		logging.FromContext(ctx).Warn().Str("mode", string(mode)).Msg("ignoring unknown theme mode")
		return
	}
	p.transition(ctx, originSetMode, func(s state) state {
		s.mode = mode
		return s
	})
}

// ToggleTheme switches to the opposite of the theme currently rendered.
// It never selects the system mode.
func (p *Provider) ToggleTheme(ctx context.Context) {
	p.transition(ctx, originSetMode, func(s state) state {
		s.mode = entity.ToggleLightDark(s.mode, s.system)
		return s
	})
}

// Cycle advances to the next enabled mode.
func (p *Provider) Cycle(ctx context.Context) entity.ThemeMode {
	var next entity.ThemeMode
	p.transition(ctx, originSetMode, func(s state) state {
		next = entity.NextEnabledThemeMode(p.modes, s.mode)
		s.mode = next
		return s
	})
	return next
}

// Subscribe calls fn with the new value after every state change, in
// change order. fn runs without any provider lock held and may read or
// change the provider; a change made from fn is delivered after fn returns.
func (p *Provider) Subscribe(fn func(Value)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// Unmount stops following the host preference and discards subscribers.
// Later mutations are ignored.
func (p *Provider) Unmount() {
	p.mu.Lock()
	if p.unmounted {
		p.mu.Unlock()
		return
	}
	p.unmounted = true
	unwatch := p.unwatch
	p.unwatch = nil
	p.subs = make(map[int]func(Value))
	p.mu.Unlock()

	// A delivery in flight may be waiting on dispatch, so unwatch runs
	// without it; the unmounted flag turns that delivery into a no-op.
	if unwatch != nil {
		unwatch()
	}
	logging.FromContext(p.ctx).Debug().Msg("theme provider unmounted")
}

func (p *Provider) onSystemTheme(theme entity.ResolvedTheme) {
	if !theme.Valid() {
		return
	}
	p.transition(p.ctx, originSystem, func(s state) state {
		s.system = theme
		return s
	})
}

// transition applies update and runs the observers under dispatch, then
// notifies subscribers after releasing it, so a subscriber may change the
// mode again.
func (p *Provider) transition(ctx context.Context, o origin, update func(state) state) {
	if !p.step(ctx, o, update) {
		return
	}
	p.deliver()
}

// step runs one transition. It reports whether a value was queued.
func (p *Provider) step(ctx context.Context, o origin, update func(state) state) bool {
	p.dispatch.Lock()
	defer p.dispatch.Unlock()

	p.mu.Lock()
	if p.unmounted {
		p.mu.Unlock()
		return false
	}
	prev := p.st
	next := update(prev)
	p.st = next
	observers := slices.Clone(p.observers)
	p.mu.Unlock()

	t := transition{prev: prev, next: next, origin: o}
	for _, obs := range observers {
		obs(ctx, t)
	}

	if prev == next {
		return false
	}
	p.mu.Lock()
	p.pending = append(p.pending, p.valueLocked())
	p.mu.Unlock()
	return true
}

// deliver drains pending values in order. Only one goroutine drains at a
// time; values queued meanwhile, including by a subscriber, are picked up
// by that goroutine before it returns.
func (p *Provider) deliver() {
	p.mu.Lock()
	if p.delivering {
		p.mu.Unlock()
		return
	}
	p.delivering = true
	for len(p.pending) > 0 && !p.unmounted {
		value := p.pending[0]
		p.pending = p.pending[1:]
		subs := make([]func(Value), 0, len(p.subs))
		for _, id := range slices.Sorted(maps.Keys(p.subs)) {
			subs = append(subs, p.subs[id])
		}
		p.mu.Unlock()

		for _, fn := range subs {
			fn(value)
		}
		p.mu.Lock()
	}
	p.pending = nil
	p.delivering = false
	p.mu.Unlock()
}

// applyOnThemeChange re-applies the document whenever the resolved theme
// changes once the provider is ready.
func (p *Provider) applyOnThemeChange(ctx context.Context, t transition) {
	if t.prev.loading || t.next.loading {
		return
	}
	if t.prev.theme() == t.next.theme() {
		return
	}
	logging.FromContext(ctx).Debug().
		Str("theme", t.next.theme().String()).
		Stringer("cause", t.origin).
		Msg("applying theme")
	host.Apply(ctx, p.env, t.next.theme(), p.applyOptions())
}

// persistOnSetMode stores the mode chosen through SetMode.
func (p *Provider) persistOnSetMode(ctx context.Context, t transition) {
	if t.origin != originSetMode || !p.env.Available() {
		return
	}
	preference.SetStored(ctx, t.next.mode, p.cfg.StorageKey, p.storage)
}

func (p *Provider) applyOptions() host.Options {
	return host.Options{
		Attribute:          p.cfg.Attribute,
		DisableTransitions: p.cfg.DisableTransitions,
		Names:              p.cfg.Themes,
	}
}
