//go:build js && wasm

package wasm

import (
	"sync"
	"syscall/js"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
)

const darkQuery = "(prefers-color-scheme: dark)"

var _ port.SystemScheme = (*MediaScheme)(nil)

// MediaScheme reads the prefers-color-scheme media query.
type MediaScheme struct {
	query js.Value
}

// NewMediaScheme returns nil when matchMedia is unavailable.
func NewMediaScheme() *MediaScheme {
	if !defined("matchMedia") {
		return nil
	}
	var query js.Value
	if err := call(func() { query = js.Global().Call("matchMedia", darkQuery) }); err != nil {
		return nil
	}
	return &MediaScheme{query: query}
}

func themeFor(dark bool) entity.ResolvedTheme {
	if dark {
		return entity.ThemeDark
	}
	return entity.ThemeLight
}

// Current implements port.SystemScheme.
func (s *MediaScheme) Current() entity.ResolvedTheme {
	return themeFor(s.query.Get("matches").Bool())
}

// Subscribe implements port.SystemScheme.
func (s *MediaScheme) Subscribe(callback func(entity.ResolvedTheme)) func() {
	var (
		mu     sync.Mutex
		active = true
	)

	listener := js.FuncOf(func(_ js.Value, args []js.Value) any {
		mu.Lock()
		defer mu.Unlock()
		if !active || len(args) == 0 {
			return nil
		}
		callback(themeFor(args[0].Get("matches").Bool()))
		return nil
	})
	s.query.Call("addEventListener", "change", listener)

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			active = false
			mu.Unlock()
			s.query.Call("removeEventListener", "change", listener)
			listener.Release()
		})
	}
}
