package colorscheme

import (
	"github.com/bnema/shade/internal/infrastructure/config"
)

// ConfigAdapter adapts config.Config to the ConfigProvider interface.
type ConfigAdapter struct {
	cfg *config.Config
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(cfg *config.Config) *ConfigAdapter {
	return &ConfigAdapter{cfg: cfg}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a.cfg == nil {
		return ""
	}
	return a.cfg.System.Force
}

// StaticScheme is a ConfigProvider returning a fixed value.
type StaticScheme string

// GetColorScheme implements ConfigProvider.
func (s StaticScheme) GetColorScheme() string { return string(s) }
