//go:build js && wasm

package wasm

import (
	"github.com/bnema/shade/internal/infrastructure/dom"
	"github.com/bnema/shade/internal/infrastructure/frame"
	"github.com/bnema/shade/internal/infrastructure/host"
)

// Env describes the page the module runs in. Outside a page (a worker, a
// server-side runtime) it returns host.None().
func Env() host.Env {
	if !defined("document") {
		return host.None()
	}

	env := host.Env{
		Document: dom.NewScript(Runner{}),
		Storage:  LocalStorage{},
	}
	if defined("requestAnimationFrame") {
		env.Frames = Frames{}
	} else {
		env.Frames = frame.NewTimer(frame.Interval)
	}
	// A nil *MediaScheme must not become a non-nil interface.
	if scheme := NewMediaScheme(); scheme != nil {
		env.Scheme = scheme
	}
	return env
}
