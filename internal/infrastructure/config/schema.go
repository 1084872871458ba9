package config

// Config represents the complete configuration for shade.
type Config struct {
	// Theme mirrors the options of a theme provider.
	Theme ThemeConfig `mapstructure:"theme" toml:"theme" json:"theme"`
	// Storage selects where the chosen mode is persisted.
	Storage StorageConfig `mapstructure:"storage" toml:"storage" json:"storage"`
	// System controls desktop color-scheme detection.
	System  SystemConfig  `mapstructure:"system" toml:"system" json:"system"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// ThemeConfig holds the provider options.
type ThemeConfig struct {
	// DefaultMode applies when no mode is stored (light, dark, system).
	DefaultMode string `mapstructure:"default_mode" toml:"default_mode" json:"default_mode" validate:"oneof=light dark system" jsonschema:"enum=light,enum=dark,enum=system,default=system"`
	// StorageKey is the key the mode is stored under.
	StorageKey string `mapstructure:"storage_key" toml:"storage_key" json:"storage_key" validate:"required,css_token" jsonschema:"default=psr-theme"`
	// Attribute is "class" or the root attribute receiving the theme, e.g. data-theme.
	Attribute string `mapstructure:"attribute" toml:"attribute" json:"attribute" validate:"required,attribute_name" jsonschema:"default=class"`
	// Themes renames the applied theme, e.g. dark = "night".
	Themes map[string]string `mapstructure:"themes" toml:"themes" json:"themes" validate:"dive,keys,oneof=light dark,endkeys,required,css_token"`
	// DisableTransitions suppresses CSS transitions while the theme swaps.
	DisableTransitions bool `mapstructure:"disable_transitions" toml:"disable_transitions" json:"disable_transitions"`
	// EnableSystem offers the system mode and follows the desktop preference.
	EnableSystem bool `mapstructure:"enable_system" toml:"enable_system" json:"enable_system" jsonschema:"default=true"`
}

// StorageBackend names a preference backend.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageFile   StorageBackend = "file"
	StorageMemory StorageBackend = "memory"
)

// StorageConfig selects the preference backend.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" validate:"oneof=sqlite file memory" jsonschema:"enum=sqlite,enum=file,enum=memory,default=file"`
	// Path overrides the backend's XDG location. Ignored by memory.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// SystemConfig controls how the desktop preference is read.
type SystemConfig struct {
	// Force overrides detection: light, dark, prefer-light, prefer-dark. Empty, auto
	// and default detect.
	Force string `mapstructure:"force" toml:"force" json:"force" validate:"omitempty,oneof=light dark prefer-light prefer-dark auto default"`
	// PollIntervalMs is the polling period used when no change signal is available.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" validate:"gte=100" jsonschema:"minimum=100,default=5000"`
	// DebounceMs coalesces bursts of desktop change signals.
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" validate:"gte=0,lte=10000" jsonschema:"minimum=0,maximum=10000,default=100"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn error disabled" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=warn"`
	Format string `mapstructure:"format" toml:"format" json:"format" validate:"oneof=console json" jsonschema:"enum=console,enum=json,default=console"`
}
