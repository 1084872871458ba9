//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/bnema/shade/internal/application/port"
)

var _ port.FrameScheduler = Frames{}

// Frames schedules tasks with requestAnimationFrame.
type Frames struct{}

// RequestFrame implements port.FrameScheduler.
func (Frames) RequestFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("requestAnimationFrame", cb)
}
