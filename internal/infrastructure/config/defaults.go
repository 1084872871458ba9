package config

// Default configuration constants
const (
	defaultStorageKey     = "psr-theme"
	defaultPollIntervalMs = 5000 // milliseconds
	defaultDebounceMs     = 100  // milliseconds
)

// DefaultConfig returns the default configuration values for shade.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			DefaultMode:  "system",
			StorageKey:   defaultStorageKey,
			Attribute:    "class",
			Themes:       map[string]string{},
			EnableSystem: true,
		},
		Storage: StorageConfig{
			Backend: StorageFile,
			// Path is set dynamically in Load()
		},
		System: SystemConfig{
			PollIntervalMs: defaultPollIntervalMs,
			DebounceMs:     defaultDebounceMs,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
