package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/internal/app/repository"
	"github.com/tastebite/tastebite-backend/internal/db"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (CartService, *model.MenuItem, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	cartService := NewCartService(cartRepo)

	item := &model.MenuItem{
		ID:       uuid.New().String(),
		Name:     "Cheese Pasta",
		Price:    5.99,
		Category: "Pasta",
	}
	testDB.Create(item)

	return cartService, item, testDB
}

func TestCartService_GetCart_Empty(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	entries, err := cartService.GetCart(model.DefaultCartID)
	assert.NoError(t, err)
	assert.Len(t, entries, 0)
}

func TestCartService_IncreaseItem(t *testing.T) {
	cartService, item, _ := setupCartServiceTest(t)

	entry, err := cartService.IncreaseItem(model.DefaultCartID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Quantity)

	entry, err = cartService.IncreaseItem(model.DefaultCartID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Quantity)
}

func TestCartService_IncreaseItem_UnknownIDCreatesEntry(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	entry, err := cartService.IncreaseItem(model.DefaultCartID, "no-such-item")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Quantity)

	entries, err := cartService.GetCart(model.DefaultCartID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCartService_DecreaseItem(t *testing.T) {
	cartService, item, _ := setupCartServiceTest(t)

	cartService.IncreaseItem(model.DefaultCartID, item.ID)
	cartService.IncreaseItem(model.DefaultCartID, item.ID)

	entry, deleted, err := cartService.DecreaseItem(model.DefaultCartID, item.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, entry.Quantity)
}

func TestCartService_DecreaseItem_DeletesAtQuantityOne(t *testing.T) {
	cartService, item, _ := setupCartServiceTest(t)

	cartService.IncreaseItem(model.DefaultCartID, item.ID)

	entry, deleted, err := cartService.DecreaseItem(model.DefaultCartID, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Nil(t, entry)

	entries, err := cartService.GetCart(model.DefaultCartID)
	require.NoError(t, err)
	assert.Len(t, entries, 0)
}

func TestCartService_DecreaseItem_NotFound(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	_, _, err := cartService.DecreaseItem(model.DefaultCartID, "no-such-item")
	assert.ErrorIs(t, err, ErrCartEntryNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	cartService, item, _ := setupCartServiceTest(t)

	cartService.IncreaseItem(model.DefaultCartID, item.ID)
	cartService.IncreaseItem(model.DefaultCartID, item.ID)
	cartService.IncreaseItem(model.DefaultCartID, item.ID)

	err := cartService.RemoveItem(model.DefaultCartID, item.ID)
	assert.NoError(t, err)

	entries, err := cartService.GetCart(model.DefaultCartID)
	require.NoError(t, err)
	assert.Len(t, entries, 0)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	err := cartService.RemoveItem(model.DefaultCartID, "no-such-item")
	assert.ErrorIs(t, err, ErrCartEntryNotFound)
}
