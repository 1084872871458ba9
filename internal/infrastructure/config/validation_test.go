package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown default mode",
			mutate:  func(cfg *Config) { cfg.Theme.DefaultMode = "sepia" },
			wantErr: "theme.default_mode must be one of: light, dark, system (got: sepia)",
		},
		{
			name:    "empty storage key",
			mutate:  func(cfg *Config) { cfg.Theme.StorageKey = "" },
			wantErr: "theme.storage_key cannot be empty",
		},
		{
			name:   "data attribute",
			mutate: func(cfg *Config) { cfg.Theme.Attribute = "data-theme" },
		},
		{
			name:    "attribute with space",
			mutate:  func(cfg *Config) { cfg.Theme.Attribute = "data theme" },
			wantErr: "theme.attribute must be",
		},
		{
			name:   "theme rename",
			mutate: func(cfg *Config) { cfg.Theme.Themes = map[string]string{"dark": "night"} },
		},
		{
			name:    "theme rename of unknown theme",
			mutate:  func(cfg *Config) { cfg.Theme.Themes = map[string]string{"system": "auto"} },
			wantErr: "theme.themes",
		},
		{
			name:    "theme rename to blank",
			mutate:  func(cfg *Config) { cfg.Theme.Themes = map[string]string{"light": "day time"} },
			wantErr: "theme.themes[light] must be a non-empty name without whitespace",
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *Config) { cfg.Storage.Backend = "redis" },
			wantErr: "storage.backend must be one of: sqlite, file, memory",
		},
		{
			name:   "forced dark",
			mutate: func(cfg *Config) { cfg.System.Force = "prefer-dark" },
		},
		{
			name:    "unknown force",
			mutate:  func(cfg *Config) { cfg.System.Force = "dim" },
			wantErr: "system.force must be one of",
		},
		{
			name:    "poll interval too small",
			mutate:  func(cfg *Config) { cfg.System.PollIntervalMs = 10 },
			wantErr: "system.poll_interval_ms must be at least 100 (got: 10)",
		},
		{
			name:    "debounce too large",
			mutate:  func(cfg *Config) { cfg.System.DebounceMs = 60000 },
			wantErr: "system.debounce_ms must be at most 10000",
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "loud" },
			wantErr: "logging.level must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.DefaultMode = "sepia"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.default_mode")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, validateConfig(nil))
}
