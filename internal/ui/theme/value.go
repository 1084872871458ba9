package theme

import (
	"context"

	"github.com/bnema/shade/internal/domain/entity"
)

// Value is a snapshot of a provider's state plus its mutators.
type Value struct {
	Mode        entity.ThemeMode
	Theme       entity.ResolvedTheme
	SystemTheme entity.ResolvedTheme
	Modes       []entity.ThemeMode
	IsLoading   bool

	provider *Provider
}

// SetMode changes the provider's mode.
func (v Value) SetMode(ctx context.Context, mode entity.ThemeMode) {
	if v.provider != nil {
		v.provider.SetMode(ctx, mode)
	}
}

// ToggleTheme switches the provider between light and dark.
func (v Value) ToggleTheme(ctx context.Context) {
	if v.provider != nil {
		v.provider.ToggleTheme(ctx)
	}
}

// IsDark reports whether the dark theme is rendered.
func (v Value) IsDark() bool {
	return v.Theme == entity.ThemeDark
}
