// Package component holds the terminal theme toggles: bubbletea models that
// read and change a theme provider.
package component

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

// Size selects the padding of a toggle button.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Variant selects the chrome drawn around a toggle button.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantOutline Variant = "outline"
	VariantGhost   Variant = "ghost"
)

// Controller is the part of a theme provider the toggles need.
// *theme.Provider satisfies it.
type Controller interface {
	Value() theme.Value
	SetMode(ctx context.Context, mode entity.ThemeMode)
}

// Props configures a toggle. Zero values fall back to the defaults.
type Props struct {
	Size       Size
	Variant    Variant
	ShowLabels bool
	// Labels and Icons override the text shown per mode. Missing entries
	// use DefaultLabels and DefaultIcons.
	Labels map[entity.ThemeMode]string
	Icons  map[entity.ThemeMode]string
	// OnChange runs after the provider received the new mode.
	OnChange func(entity.ThemeMode)
}

// DefaultLabels are the mode names shown when Props.Labels has no entry.
var DefaultLabels = map[entity.ThemeMode]string{
	entity.ThemeModeLight:  "Light",
	entity.ThemeModeDark:   "Dark",
	entity.ThemeModeSystem: "System",
}

// DefaultIcons are the glyphs shown when Props.Icons has no entry.
var DefaultIcons = map[entity.ThemeMode]string{
	entity.ThemeModeLight:  "☀",
	entity.ThemeModeDark:   "☾",
	entity.ThemeModeSystem: "◐",
}

func (p Props) label(mode entity.ThemeMode) string {
	if l := p.Labels[mode]; l != "" {
		return l
	}
	return DefaultLabels[mode]
}

func (p Props) icon(mode entity.ThemeMode) string {
	if i := p.Icons[mode]; i != "" {
		return i
	}
	return DefaultIcons[mode]
}

func (p Props) size() Size {
	switch p.Size {
	case SizeSmall, SizeLarge:
		return p.Size
	}
	return SizeMedium
}

func (p Props) variant() Variant {
	switch p.Variant {
	case VariantOutline, VariantGhost:
		return p.Variant
	}
	return VariantDefault
}

// ModeChangedMsg is returned as a command result after a toggle changed the mode.
type ModeChangedMsg struct {
	Mode entity.ThemeMode
}

func modeChanged(mode entity.ThemeMode) tea.Cmd {
	return func() tea.Msg { return ModeChangedMsg{Mode: mode} }
}

// advance moves the provider to the mode after the current one among the
// enabled modes, then reports it to onChange.
func advance(ctx context.Context, c Controller, onChange func(entity.ThemeMode)) entity.ThemeMode {
	v := c.Value()
	next := entity.NextEnabledThemeMode(v.Modes, v.Mode)
	return selectMode(ctx, c, next, onChange)
}

func selectMode(ctx context.Context, c Controller, mode entity.ThemeMode, onChange func(entity.ThemeMode)) entity.ThemeMode {
	c.SetMode(ctx, mode)
	if onChange != nil {
		onChange(mode)
	}
	return mode
}
