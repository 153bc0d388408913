package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyPromoCode, "SAVE10"))

	var code string
	found, err := store.Get(ctx, KeyPromoCode, &code)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "SAVE10", code)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()

	var code string
	found, err := store.Get(context.Background(), KeyPromoCode, &code)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, code)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, KeySubtotal, "11.98")
	store.Set(ctx, KeyShippingCost, "5.00")

	require.NoError(t, store.Clear(ctx))

	var value string
	found, _ := store.Get(ctx, KeySubtotal, &value)
	assert.False(t, found)
}

func TestMemoryStore_OverwritesValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, KeyPromoCode, "FIRST")
	store.Set(ctx, KeyPromoCode, "SECOND")

	var code string
	_, err := store.Get(ctx, KeyPromoCode, &code)
	require.NoError(t, err)
	assert.Equal(t, "SECOND", code)
}
