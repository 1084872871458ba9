// Package colorscheme detects the operating system's light/dark preference
// and reports changes to it.
package colorscheme

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/shade/internal/application/port"
)

const (
	// SourceFallback indicates no detector provided the preference.
	SourceFallback = "fallback"
	// SourceConfig indicates the preference was forced by user config.
	SourceConfig = "config"
)

var _ port.ColorSchemeResolver = (*Resolver)(nil)

// ConfigProvider supplies the forced scheme: "light", "dark", "prefer-light"
// or "prefer-dark". Empty, "auto" and "default" leave detection on.
type ConfigProvider interface {
	GetColorScheme() string
}

// Resolver asks registered detectors, highest priority first, unless the
// config forces a scheme. The last refreshed preference starts as light.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference

	listeners map[int]func(port.ColorSchemePreference)
	nextID    int
}

// NewResolver creates a resolver without detectors. config may be nil.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config:    config,
		current:   port.ColorSchemePreference{Source: SourceFallback},
		listeners: make(map[int]func(port.ColorSchemePreference)),
	}
}

// Resolve implements port.ColorSchemeResolver. It detects on every call
// and never notifies.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	if pref, ok := r.forced(); ok {
		return pref
	}
	for _, d := range r.Detectors() {
		if !d.Available() {
			continue
		}
		if dark, ok := d.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: dark, Source: d.Name()}
		}
	}
	return port.ColorSchemePreference{Source: SourceFallback}
}

func (r *Resolver) forced() (port.ColorSchemePreference, bool) {
	if r.config == nil {
		return port.ColorSchemePreference{}, false
	}
	switch strings.ToLower(strings.TrimSpace(r.config.GetColorScheme())) {
	case "dark", "prefer-dark":
		return port.ColorSchemePreference{PrefersDark: true, Source: SourceConfig}, true
	case "light", "prefer-light":
		return port.ColorSchemePreference{Source: SourceConfig}, true
	}
	return port.ColorSchemePreference{}, false
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Detectors returns a copy of the registered detectors, highest priority first.
// Detectors of equal priority keep their registration order.
func (r *Resolver) Detectors() []port.ColorSchemeDetector {
	r.mu.RLock()
	out := slices.Clone(r.detectors)
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b port.ColorSchemeDetector) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
	return out
}

// Refresh implements port.ColorSchemeResolver. Listeners run on the calling
// goroutine, after the lock is released, only when light/dark flipped.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	pref := r.Resolve()

	r.mu.Lock()
	flipped := pref.PrefersDark != r.current.PrefersDark
	r.current = pref
	var notify []func(port.ColorSchemePreference)
	if flipped {
		notify = make([]func(port.ColorSchemePreference), 0, len(r.listeners))
		for _, fn := range r.listeners {
			notify = append(notify, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range notify {
		fn(pref)
	}
	return pref
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = callback

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}
