package config

import (
	"slices"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file changes on disk and reports
// each new config to the OnConfigChange listeners. Calling it twice is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watched {
		return nil
	}
	m.viper.OnConfigChange(m.onFileEvent)
	m.viper.WatchConfig()
	m.watched = true
	return nil
}

// OnConfigChange adds fn to the listeners run after each reload.
// Listeners run on the watcher goroutine without the manager lock.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Manager) onFileEvent(e fsnotify.Event) {
	log := m.logger.With().Str("file", e.Name).Str("op", e.Op.String()).Logger()

	m.mu.Lock()
	if m.ownWrite {
		// Save already installed the written config.
		m.ownWrite = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to resync after save")
		}
	} else if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config change rejected, keeping previous config")
		return
	}
	current := m.snapshotLocked()
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	log.Debug().Int("listeners", len(listeners)).Msg("config reloaded")
	for _, fn := range listeners {
		fn(current)
	}
}

func (m *Manager) snapshotLocked() *Config {
	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.Clone()
}

// reload rereads and decodes the file. m.mu must be held for writing.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}
