package statefile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestStore_GetBeforeFirstSet(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "state.toml"))
	require.NoError(t, err)

	v, ok, err := s.Get(context.Background(), "psr-theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_RoundTripCreatesDirectories(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "shade", "state.toml")
	s, err := New(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "psr-theme", "dark"))
	require.NoError(t, s.Set(ctx, "other", "light"))

	v, ok, err := s.Get(ctx, "psr-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[preferences]")
	assert.Contains(t, string(data), "psr-theme")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(fileDataPerm), info.Mode().Perm())
}

func TestStore_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("preferences = [unterminated"), 0o600))

	s, err := New(path)
	require.NoError(t, err)

	_, _, err = s.Get(context.Background(), "psr-theme")
	require.Error(t, err)

	err = s.Set(context.Background(), "psr-theme", "dark")
	require.Error(t, err)
}

func TestStore_ConcurrentWritersKeepEveryKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.toml")

	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, k := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			// separate stores stand in for separate processes
			s, err := New(path)
			if assert.NoError(t, err) {
				assert.NoError(t, s.Set(ctx, key, "dark"))
			}
		}(k)
	}
	wg.Wait()

	s, err := New(path)
	require.NoError(t, err)
	for _, k := range keys {
		v, ok, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.True(t, ok, k)
		assert.Equal(t, "dark", v)
	}
}
