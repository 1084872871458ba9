// Package host applies themes to a document root and reads the host's
// color-scheme preference. A zero Env stands for a non-interactive host,
// where every operation is a no-op returning defaults.
package host

import (
	"context"
	"slices"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// AttributeClass selects class mode in Options.Attribute.
const AttributeClass = "class"

// DisableTransitionsCSS suppresses every CSS transition while a theme swaps.
const DisableTransitionsCSS = "*, *::before, *::after { transition: none !important; }"

// Env is the set of host capabilities a theme manager can use.
type Env struct {
	// Document is the document root. A nil Document means no host.
	Document port.Document
	// Frames schedules the removal of the transition suppression style.
	Frames port.FrameScheduler
	// Scheme is the host's prefers-color-scheme source.
	Scheme port.SystemScheme
	// Storage is the host's default preference backend.
	Storage port.PreferenceBackend
}

// None returns the environment of a non-interactive host.
func None() Env {
	return Env{}
}

// Available reports whether the environment has a document to theme.
func (e Env) Available() bool {
	return e.Document != nil
}

// Options controls how Apply marks the document root.
type Options struct {
	// Attribute is "class" or the name of the attribute receiving the theme.
	Attribute string
	// DisableTransitions suppresses CSS transitions for the frame of the swap.
	DisableTransitions bool
	// Names maps a resolved theme to the value written to the root.
	Names map[string]string
}

// Name returns the value written to the root for theme.
func (o Options) Name(theme entity.ResolvedTheme) string {
	if name, ok := o.Names[string(theme)]; ok && name != "" {
		return name
	}
	return string(theme)
}

// classNames lists every class Apply may have added before.
func (o Options) classNames() []string {
	names := []string{string(entity.ThemeLight), string(entity.ThemeDark)}
	for _, theme := range []entity.ResolvedTheme{entity.ThemeLight, entity.ThemeDark} {
		if n := o.Name(theme); !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	return names
}

// Apply marks the document root with theme. The color-scheme hint is always
// set to the resolved theme itself so native controls follow it. Document
// failures are logged and skipped.
func Apply(ctx context.Context, env Env, theme entity.ResolvedTheme, opts Options) {
	if !env.Available() {
		return
	}
	log := logging.FromContext(ctx)
	doc := env.Document

	if opts.DisableTransitions {
		if restore := suppressTransitions(ctx, env); restore != nil {
			defer restore()
		}
	}

	attribute := opts.Attribute
	if attribute == "" {
		attribute = AttributeClass
	}

	if attribute == AttributeClass {
		if err := doc.RemoveClasses(ctx, opts.classNames()...); err != nil {
			log.Warn().Err(err).Msg("failed to remove theme classes")
		}
		if err := doc.AddClass(ctx, opts.Name(theme)); err != nil {
			log.Warn().Err(err).Str("theme", theme.String()).Msg("failed to add theme class")
		}
	} else if err := doc.SetAttribute(ctx, attribute, opts.Name(theme)); err != nil {
		log.Warn().Err(err).Str("attribute", attribute).Msg("failed to set theme attribute")
	}

	if err := doc.SetColorScheme(ctx, theme.String()); err != nil {
		log.Warn().Err(err).Msg("failed to set color-scheme")
	}
}

// suppressTransitions installs DisableTransitionsCSS until the next frame.
// Without a frame scheduler it returns the removal for the caller to run
// once the swap is done.
func suppressTransitions(ctx context.Context, env Env) func() {
	remove, err := env.Document.InjectStyle(ctx, DisableTransitionsCSS)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to disable transitions")
		return nil
	}
	if env.Frames == nil {
		return remove
	}
	env.Frames.RequestFrame(remove)
	return nil
}

// SystemTheme returns the host's preferred theme, light for a non-interactive host.
func SystemTheme(env Env) entity.ResolvedTheme {
	if !env.Available() || env.Scheme == nil {
		return entity.ThemeLight
	}
	if theme := env.Scheme.Current(); theme.Valid() {
		return theme
	}
	return entity.ThemeLight
}

// ListenSystemTheme calls callback with the new theme on every host preference
// change. The returned function removes the subscription; calling it again is harmless.
func ListenSystemTheme(env Env, callback func(entity.ResolvedTheme)) func() {
	if !env.Available() || env.Scheme == nil || callback == nil {
		return func() {}
	}
	return env.Scheme.Subscribe(callback)
}
