package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/logging"
)

// Compile-time interface check.
var _ port.PreferenceBackend = (*PreferenceRepository)(nil)

// PreferenceRepository stores preferences in the preferences table.
type PreferenceRepository struct {
	lazy *LazyDB
}

// NewPreferenceRepository creates a repository backed by a lazily opened database.
func NewPreferenceRepository(lazy *LazyDB) *PreferenceRepository {
	return &PreferenceRepository{lazy: lazy}
}

// Get implements port.PreferenceBackend.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := r.lazy.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query preference %q: %w", key, err)
	}
	return value, true, nil
}

// Set implements port.PreferenceBackend.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	db, err := r.lazy.DB(ctx)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("setting preference")

	_, err = db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store preference %q: %w", key, err)
	}
	return nil
}
