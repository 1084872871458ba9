package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/shade/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shade/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("debug", cfg.Level)
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func TestPreferenceRepository_MissingKey(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "shade.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewPreferenceRepository(lazy)

	value, ok, err := repo.Get(ctx, "psr-theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "shade.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewPreferenceRepository(lazy)

	require.NoError(t, repo.Set(ctx, "psr-theme", "dark"))
	value, ok, err := repo.Get(ctx, "psr-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	// last write wins
	require.NoError(t, repo.Set(ctx, "psr-theme", "system"))
	value, _, err = repo.Get(ctx, "psr-theme")
	require.NoError(t, err)
	assert.Equal(t, "system", value)
}

func TestPreferenceRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "shade.db")

	first := sqlite.NewLazyDB(dbPath)
	require.NoError(t, sqlite.NewPreferenceRepository(first).Set(ctx, "k", "light"))
	require.NoError(t, first.Close())

	second := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = second.Close() })

	value, ok, err := sqlite.NewPreferenceRepository(second).Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestPreferenceRepository_InMemory(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(sqlite.MemoryPath)
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewPreferenceRepository(lazy)
	require.NoError(t, repo.Set(ctx, "a", "dark"))

	value, ok, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestPreferenceRepository_KeysAreIndependent(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "shade.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewPreferenceRepository(lazy)
	require.NoError(t, repo.Set(ctx, "app-a", "dark"))
	require.NoError(t, repo.Set(ctx, "app-b", "light"))

	a, _, err := repo.Get(ctx, "app-a")
	require.NoError(t, err)
	b, _, err := repo.Get(ctx, "app-b")
	require.NoError(t, err)

	assert.Equal(t, "dark", a)
	assert.Equal(t, "light", b)
}
