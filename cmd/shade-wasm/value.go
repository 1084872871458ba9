package main

import "github.com/bnema/shade/internal/ui/theme"

// valueObject converts a provider value to the plain object handed to page scripts.
func valueObject(v theme.Value) map[string]any {
	modes := make([]any, 0, len(v.Modes))
	for _, m := range v.Modes {
		modes = append(modes, m.String())
	}
	return map[string]any{
		"mode":        v.Mode.String(),
		"theme":       v.Theme.String(),
		"systemTheme": v.SystemTheme.String(),
		"modes":       modes,
		"isLoading":   v.IsLoading,
	}
}
