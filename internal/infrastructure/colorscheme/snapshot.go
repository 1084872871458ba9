package colorscheme

import (
	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
)

var _ port.SystemScheme = Snapshot("")

// Snapshot is a port.SystemScheme frozen at one detected value. It never
// notifies, so one-shot commands do not start a change source.
type Snapshot entity.ResolvedTheme

// SnapshotOf resolves the current preference once.
func SnapshotOf(resolver port.ColorSchemeResolver) Snapshot {
	return Snapshot(resolver.Resolve().Theme())
}

// Current implements port.SystemScheme.
func (s Snapshot) Current() entity.ResolvedTheme {
	if theme := entity.ResolvedTheme(s); theme.Valid() {
		return theme
	}
	return entity.ThemeLight
}

// Subscribe implements port.SystemScheme. The callback is never invoked.
func (Snapshot) Subscribe(func(entity.ResolvedTheme)) func() {
	return func() {}
}
