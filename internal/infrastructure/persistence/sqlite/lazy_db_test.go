package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnce(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "nested", "shade.db")
	lazy := sqlite.NewLazyDB(path)
	assert.Equal(t, path, lazy.Path())
	assert.False(t, lazy.IsInitialized())
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing is created before first use")

	first, err := lazy.DB(ctx)
	require.NoError(t, err)
	second, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.True(t, lazy.IsInitialized())

	var n int
	require.NoError(t, first.QueryRowContext(ctx, "SELECT count(*) FROM preferences").Scan(&n))
	assert.Zero(t, n)

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
	_, err = lazy.DB(ctx)
	assert.ErrorIs(t, err, sqlite.ErrClosed)
}

func TestLazyDB_ConcurrentFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "shade.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	dbs := make([]*sql.DB, 8)
	var wg sync.WaitGroup
	for i := range dbs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			dbs[i] = db
		}()
	}
	wg.Wait()

	for _, db := range dbs[1:] {
		assert.Same(t, dbs[0], db)
	}
}

func TestLazyDB_CloseUnopened(t *testing.T) {
	assert.NoError(t, sqlite.NewLazyDB(sqlite.MemoryPath).Close())
}

func TestLazyDB_OpenFailureSticks(t *testing.T) {
	ctx := testCtx()
	// A file in place of the parent directory cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "shade.db"))

	_, first := lazy.DB(ctx)
	require.Error(t, first)
	_, second := lazy.DB(ctx)
	assert.Equal(t, first, second)
	assert.False(t, lazy.IsInitialized())
}
