package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newSQLite(t *testing.T) (*SQLiteAdapter, *fakeClock) {
	t.Helper()

	adapter, err := NewSQLiteAdapter(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	adapter.now = clock.Now

	return adapter, clock
}

func TestSQLiteAdapter_GetSet(t *testing.T) {
	adapter, _ := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "cart:1", []byte("a"), 0))
	got, err := adapter.Get(ctx, "cart:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)

	// overwrite
	require.NoError(t, adapter.Set(ctx, "cart:1", []byte("b"), 0))
	got, err = adapter.Get(ctx, "cart:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestSQLiteAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newSQLite(t)

	_, err := adapter.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteAdapter_TTL(t *testing.T) {
	adapter, clock := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "draft:1", []byte("x"), time.Hour))

	clock.Advance(59 * time.Minute)
	_, err := adapter.Get(ctx, "draft:1")
	assert.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = adapter.Get(ctx, "draft:1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteAdapter_Delete(t *testing.T) {
	adapter, _ := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "history:1", []byte("x"), 0))
	require.NoError(t, adapter.Delete(ctx, "history:1"))

	_, err := adapter.Get(ctx, "history:1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, adapter.Delete(ctx, "history:1"))
}

func TestSQLiteAdapter_SetIfAbsent(t *testing.T) {
	adapter, clock := newSQLite(t)
	ctx := context.Background()

	ok, err := adapter.SetIfAbsent(ctx, "lock", []byte("1"), 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = adapter.SetIfAbsent(ctx, "lock", []byte("2"), 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	clock.Advance(11 * time.Second)

	ok, err = adapter.SetIfAbsent(ctx, "lock", []byte("3"), 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := adapter.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), got)
}

func TestSQLiteAdapter_DeleteIfEquals(t *testing.T) {
	adapter, _ := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "submit:42", []byte("owner-a"), time.Minute))

	ok, err := adapter.DeleteIfEquals(ctx, "submit:42", []byte("owner-b"))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := adapter.Get(ctx, "submit:42")
	require.NoError(t, err)
	assert.Equal(t, []byte("owner-a"), got)

	ok, err = adapter.DeleteIfEquals(ctx, "submit:42", []byte("owner-a"))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = adapter.Get(ctx, "submit:42")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteAdapter_Ping(t *testing.T) {
	adapter, _ := newSQLite(t)
	assert.NoError(t, adapter.Ping(context.Background()))
}
