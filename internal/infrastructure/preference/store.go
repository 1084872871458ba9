// Package preference persists the theme mode in a pluggable key-value backend.
//
// Persistence is best-effort: backend failures are logged as warnings and
// degrade to "no persisted preference". Nothing in this package returns an
// error to theme consumers.
package preference

import (
	"context"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// GetStored reads the mode persisted under key.
// A nil backend means no host storage and reads as absent.
func GetStored(ctx context.Context, key string, backend port.PreferenceBackend) (mode entity.ThemeMode, ok bool) {
	if backend == nil {
		return "", false
	}
	log := logging.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("storage_key", key).Interface("panic", r).Msg("failed to get theme from storage")
			mode, ok = "", false
		}
	}()

	raw, found, err := backend.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("storage_key", key).Msg("failed to get theme from storage")
		return "", false
	}
	if !found || raw == "" {
		return "", false
	}

	parsed, valid := entity.ParseThemeMode(raw)
	if !valid {
		log.Warn().Str("storage_key", key).Str("value", raw).Msg("ignoring unknown stored theme")
		return "", false
	}
	return parsed, true
}

// SetStored writes mode under key. Failures are logged and otherwise ignored.
func SetStored(ctx context.Context, mode entity.ThemeMode, key string, backend port.PreferenceBackend) {
	if backend == nil {
		return
	}
	log := logging.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("storage_key", key).Interface("panic", r).Msg("failed to store theme")
		}
	}()

	if err := backend.Set(ctx, key, string(mode)); err != nil {
		log.Warn().Err(err).Str("storage_key", key).Str("mode", string(mode)).Msg("failed to store theme")
		return
	}
	log.Debug().Str("storage_key", key).Str("mode", string(mode)).Msg("theme stored")
}
