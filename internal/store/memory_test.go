package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SetInt(ctx, "volume", 7))
	require.NoError(t, s.SetFloat(ctx, "ratio", 0.25))
	require.NoError(t, s.SetString(ctx, "name", "player"))

	i, err := s.GetInt(ctx, "volume", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, i)

	f, err := s.GetFloat(ctx, "ratio", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	str, err := s.GetString(ctx, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "player", str)
}

func TestMemoryStore_MissingAndMismatchedKinds(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v, err := s.GetInt(ctx, "missing", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	require.NoError(t, s.SetString(ctx, "name", "12"))

	v, err = s.GetInt(ctx, "name", -1)
	require.NoError(t, err)
	assert.Equal(t, -1, v, "string record must not be read as int")

	f, err := s.GetFloat(ctx, "name", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SetInt(ctx, "a", 1))
	require.NoError(t, s.SetInt(ctx, "b", 2))

	ok, err := s.HasKey(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.DeleteKey(ctx, "a"))
	ok, _ = s.HasKey(ctx, "a")
	assert.False(t, ok)

	// deleting a missing key is not an error
	require.NoError(t, s.DeleteKey(ctx, "a"))

	require.NoError(t, s.DeleteAll(ctx))
	ok, _ = s.HasKey(ctx, "b")
	assert.False(t, ok)
	assert.NoError(t, s.Save(ctx))
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SetInt(ctx, "counter", i)
			_, _ = s.GetInt(ctx, "counter", 0)
		}()
	}
	wg.Wait()

	ok, err := s.HasKey(ctx, "counter")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileStore_SaveAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SetInt(ctx, "volume", 3))
	require.NoError(t, s.SetString(ctx, "name", "p1"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing is written before Save")

	require.NoError(t, s.Save(ctx))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	v, err := reopened.GetInt(ctx, "volume", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	name, err := reopened.GetString(ctx, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "p1", name)
}

func TestFileStore_SaveSkipsCleanState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}
