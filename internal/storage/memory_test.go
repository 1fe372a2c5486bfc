package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizmaster-lambda/internal/storage"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	t.Run("MissingKey", func(t *testing.T) {
		v, found, err := store.Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, v)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v1")))
		require.NoError(t, store.Set(ctx, "k", []byte("v2")))

		v, found, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "v2", string(v))
	})

	t.Run("ValuesAreCopied", func(t *testing.T) {
		in := []byte("abc")
		require.NoError(t, store.Set(ctx, "copy", in))
		in[0] = 'x'

		v, _, err := store.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(v))
	})

	t.Run("EmptyKey", func(t *testing.T) {
		assert.ErrorIs(t, store.Set(ctx, "", nil), storage.ErrEmptyKey)
		_, _, err := store.Get(ctx, "")
		assert.ErrorIs(t, err, storage.ErrEmptyKey)
	})
}
