//go:build js && wasm

// Command shade-wasm runs the theme provider inside a browser page. It reads
// options from window.shadeConfig and exposes window.shade.
package main

import (
	"context"
	"encoding/json"
	"os"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/wasm"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/theme"
)

// pageConfig mirrors window.shadeConfig.
type pageConfig struct {
	DefaultMode        string            `json:"defaultMode"`
	StorageKey         string            `json:"storageKey"`
	Attribute          string            `json:"attribute"`
	Themes             map[string]string `json:"themes"`
	DisableTransitions bool              `json:"disableTransitions"`
	EnableSystem       *bool             `json:"enableSystem"`
	LogLevel           string            `json:"logLevel"`
}

func readPageConfig() pageConfig {
	var cfg pageConfig
	raw := js.Global().Get("shadeConfig")
	if raw.IsUndefined() || raw.IsNull() {
		return cfg
	}
	data := js.Global().Get("JSON").Call("stringify", raw).String()
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		// An unreadable config falls back to defaults.
		return pageConfig{}
	}
	return cfg
}

func (c pageConfig) themeConfig() theme.Config {
	cfg := theme.DefaultConfig()
	if mode, ok := entity.ParseThemeMode(c.DefaultMode); ok {
		cfg.DefaultMode = mode
	}
	if c.StorageKey != "" {
		cfg.StorageKey = c.StorageKey
	}
	if c.Attribute != "" {
		cfg.Attribute = c.Attribute
	}
	if c.Themes != nil {
		cfg.Themes = c.Themes
	}
	cfg.DisableTransitions = c.DisableTransitions
	if c.EnableSystem != nil {
		cfg.EnableSystem = *c.EnableSystem
	}
	return cfg
}

func main() {
	pc := readPageConfig()

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(pc.LogLevel, zerolog.WarnLevel),
		Format: "json",
		Output: os.Stderr,
	})
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "wasm")

	provider := theme.Mount(ctx, pc.themeConfig(), wasm.Env())

	api := map[string]any{
		"setMode": js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) > 0 {
				provider.SetMode(ctx, entity.ThemeMode(args[0].String()))
			}
			return js.ValueOf(valueObject(provider.Value()))
		}),
		"toggle": js.FuncOf(func(js.Value, []js.Value) any {
			provider.ToggleTheme(ctx)
			return js.ValueOf(valueObject(provider.Value()))
		}),
		"cycle": js.FuncOf(func(js.Value, []js.Value) any {
			provider.Cycle(ctx)
			return js.ValueOf(valueObject(provider.Value()))
		}),
		"get": js.FuncOf(func(js.Value, []js.Value) any {
			return js.ValueOf(valueObject(provider.Value()))
		}),
		"subscribe": js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) == 0 || args[0].Type() != js.TypeFunction {
				return js.Undefined()
			}
			fn := args[0]
			unsubscribe := provider.Subscribe(func(v theme.Value) {
				fn.Invoke(js.ValueOf(valueObject(v)))
			})
			var release js.Func
			release = js.FuncOf(func(js.Value, []js.Value) any {
				unsubscribe()
				release.Release()
				return js.Undefined()
			})
			return release
		}),
	}
	js.Global().Set("shade", js.ValueOf(api))

	if ready := js.Global().Get("onShadeReady"); ready.Type() == js.TypeFunction {
		ready.Invoke(js.ValueOf(valueObject(provider.Value())))
	}

	// The page owns the module's lifetime.
	select {}
}
