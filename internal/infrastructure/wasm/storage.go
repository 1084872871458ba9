//go:build js && wasm

package wasm

import (
	"context"
	"syscall/js"

	"github.com/bnema/shade/internal/application/port"
)

var _ port.PreferenceBackend = LocalStorage{}

// LocalStorage stores preferences in window.localStorage. Access can throw
// (privacy modes, quota), which surfaces as an error.
type LocalStorage struct{}

// Get implements port.PreferenceBackend.
func (LocalStorage) Get(_ context.Context, key string) (string, bool, error) {
	var v js.Value
	err := call(func() {
		v = js.Global().Get("localStorage").Call("getItem", key)
	})
	if err != nil {
		return "", false, err
	}
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set implements port.PreferenceBackend.
func (LocalStorage) Set(_ context.Context, key, value string) error {
	return call(func() {
		js.Global().Get("localStorage").Call("setItem", key, value)
	})
}
