//go:build js && wasm

// Package wasm adapts the browser the js/wasm build runs in: the real
// document root, localStorage, matchMedia and requestAnimationFrame.
package wasm

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/bnema/shade/internal/application/port"
)

var _ port.ScriptRunner = Runner{}

// Runner evaluates scripts with the page's global eval.
type Runner struct{}

// RunJavaScript implements port.ScriptRunner.
func (Runner) RunJavaScript(ctx context.Context, script string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return call(func() { js.Global().Call("eval", script) })
}

// call runs fn and turns a thrown JavaScript exception into an error.
func call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = fmt.Errorf("javascript: %w", jsErr)
				return
			}
			err = fmt.Errorf("javascript: %v", r)
		}
	}()
	fn()
	return nil
}

// defined reports whether the global name exists.
func defined(name string) bool {
	v := js.Global().Get(name)
	return !v.IsUndefined() && !v.IsNull()
}
