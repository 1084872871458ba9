package component

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/shade/internal/ui/theme"
)

// ThemeChangedMsg carries a provider change into a running program.
type ThemeChangedMsg struct {
	Value theme.Value
}

// Subscriber is a source of provider changes. *theme.Provider satisfies it.
type Subscriber interface {
	Subscribe(fn func(theme.Value)) func()
}

// Sender delivers messages to a program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Follow forwards every change of src to dst until the returned stop is
// called. Provider callbacks never block on the program: only the latest
// pending value is kept, so a busy program skips intermediate states.
func Follow(src Subscriber, dst Sender) (stop func()) {
	updates := make(chan theme.Value, 1)
	done := make(chan struct{})

	unsubscribe := src.Subscribe(func(v theme.Value) {
		for {
			select {
			case updates <- v:
				return
			default:
			}
			// drop the stale value
			select {
			case <-updates:
			default:
			}
		}
	})

	go func() {
		for {
			select {
			case v := <-updates:
				dst.Send(ThemeChangedMsg{Value: v})
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(done)
		})
	}
}
