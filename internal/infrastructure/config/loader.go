package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config *Config
	viper  *viper.Viper
	logger zerolog.Logger

	mu        sync.RWMutex
	listeners []func(*Config)
	watched   bool
	// ownWrite marks the next file event as caused by Save.
	ownWrite bool
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for config events.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// SHADE_THEME_DEFAULT_MODE, SHADE_STORAGE_BACKEND, ...
	v.SetEnvPrefix("SHADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging variables keep the names the logger reads before config loads.
	if err := v.BindEnv("logging.level", "SHADE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SHADE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_FORMAT: %w", err)
	}

	m := &Manager{
		viper:  v,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)
	if err := ensureStoragePath(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		return nil
	}

	var (
		path string
		err  error
	)
	switch config.Storage.Backend {
	case StorageSQLite:
		path, err = GetDatabaseFile()
	case StorageFile:
		path, err = GetStateFile()
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	config.Theme.DefaultMode = strings.ToLower(strings.TrimSpace(config.Theme.DefaultMode))
	config.Theme.Attribute = strings.TrimSpace(config.Theme.Attribute)
	if config.Theme.Themes == nil {
		config.Theme.Themes = map[string]string{}
	}

	switch backend := StorageBackend(strings.ToLower(string(config.Storage.Backend))); backend {
	case "":
		config.Storage.Backend = StorageFile
	default:
		config.Storage.Backend = backend
	}

	config.System.Force = strings.ToLower(strings.TrimSpace(config.System.Force))
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.snapshotLocked()
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Theme.Themes = make(map[string]string, len(c.Theme.Themes))
	for k, v := range c.Theme.Themes {
		out.Theme.Themes[k] = v
	}
	return &out
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate before writing so the wizard gets immediate errors.
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, configFile); err != nil {
		return err
	}

	if m.watched {
		m.ownWrite = true
		current := cfg.Clone()
		normalizeConfig(current)
		if err := ensureStoragePath(current); err != nil {
			return err
		}
		m.config = current
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and their JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.logger.Info().Str("path", configFile).Msg("created default configuration file")

	if schemaFile, err := GenerateSchemaFile(); err != nil {
		m.logger.Warn().Err(err).Msg("failed to generate config schema")
	} else {
		m.logger.Debug().Str("path", schemaFile).Msg("generated config schema")
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("theme.default_mode", defaults.Theme.DefaultMode)
	m.viper.SetDefault("theme.storage_key", defaults.Theme.StorageKey)
	m.viper.SetDefault("theme.attribute", defaults.Theme.Attribute)
	m.viper.SetDefault("theme.themes", defaults.Theme.Themes)
	m.viper.SetDefault("theme.disable_transitions", defaults.Theme.DisableTransitions)
	m.viper.SetDefault("theme.enable_system", defaults.Theme.EnableSystem)

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.viper.SetDefault("system.force", defaults.System.Force)
	m.viper.SetDefault("system.poll_interval_ms", defaults.System.PollIntervalMs)
	m.viper.SetDefault("system.debounce_ms", defaults.System.DebounceMs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
