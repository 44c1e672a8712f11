package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1", time.Hour)
	require.NoError(t, err)
	assert.Len(t, token, 64)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, store.Delete(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1", -time.Second)
	require.NoError(t, err)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Create(ctx, "user-1", time.Hour)
	require.NoError(t, err)
	second, err := store.Create(ctx, "user-1", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
