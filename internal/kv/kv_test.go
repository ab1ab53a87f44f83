package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("MissingKey", func(t *testing.T) {
		_, err := store.Get(ctx, KeyOrders)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SetGet", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyProfile, []byte(`{"name":"Ana"}`)))
		got, err := store.Get(ctx, KeyProfile)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"name":"Ana"}`), got)
	})

	t.Run("SetCopiesValue", func(t *testing.T) {
		buf := []byte(`{"n":1}`)
		require.NoError(t, store.Set(ctx, "scratch", buf))
		buf[2] = 'x'
		got, err := store.Get(ctx, "scratch")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"n":1}`), got)
	})

	t.Run("LastWriterWins", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyOrders, []byte(`[1]`)))
		require.NoError(t, store.Set(ctx, KeyOrders, []byte(`[1,2]`)))
		got, err := store.Get(ctx, KeyOrders)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1,2]`), got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyAuthSession, []byte(`{}`)))
		require.NoError(t, store.Delete(ctx, KeyAuthSession))
		_, err := store.Get(ctx, KeyAuthSession)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteMissingIsNoop", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-written"))
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyUsers, []byte(`[]`)))
		require.NoError(t, store.Clear(ctx))
		_, err := store.Get(ctx, KeyUsers)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
