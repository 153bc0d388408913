package repository

import (
	"time"

	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository is the single source of truth for cart quantities. Every
// mutation is a single SQL statement (or a short transaction of single
// statements), never a caller-side read-modify-write, so concurrent
// operations on the same (cart_id, item_id) cannot lose updates.
type CartRepository interface {
	List(cartID string) ([]model.CartEntry, error)
	Get(cartID, itemID string) (*model.CartEntry, error)
	UpsertIncrement(cartID, itemID string) (*model.CartEntry, error)
	DecrementOrDelete(cartID, itemID string) (*model.CartEntry, bool, error)
	Remove(cartID, itemID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) List(cartID string) ([]model.CartEntry, error) {
	var entries []model.CartEntry
	err := r.db.Where("cart_id = ?", cartID).Order("created_at").Find(&entries).Error
	if err != nil {
		logger.Error("Failed to list cart entries in database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}

	logger.Debug("Cart entries listed from database", map[string]interface{}{
		"cart_id": cartID,
		"count":   len(entries),
	})
	return entries, nil
}

func (r *cartRepository) Get(cartID, itemID string) (*model.CartEntry, error) {
	var entry model.CartEntry
	err := r.db.Where("cart_id = ? AND item_id = ?", cartID, itemID).First(&entry).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to get cart entry from database", err, map[string]interface{}{
				"cart_id": cartID,
				"item_id": itemID,
			})
		}
		return nil, err
	}
	return &entry, nil
}

// UpsertIncrement creates {itemID, quantity: 1} when the entry is absent and
// atomically bumps the quantity by one when it exists. The increment happens
// inside the upsert statement itself, so two concurrent calls both land.
func (r *cartRepository) UpsertIncrement(cartID, itemID string) (*model.CartEntry, error) {
	logger.Debug("Upserting cart entry increment in database", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	})

	entry := model.CartEntry{CartID: cartID, ItemID: itemID, Quantity: 1}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&entry).Error
	if err != nil {
		logger.Error("Failed to upsert cart entry in database", err, map[string]interface{}{
			"cart_id": cartID,
			"item_id": itemID,
		})
		return nil, err
	}

	return r.Get(cartID, itemID)
}

// DecrementOrDelete lowers the quantity by one, deleting the entry instead
// when it would reach zero. Reports (entry, false) after a plain decrement,
// (nil, true) after a deletion, and gorm.ErrRecordNotFound when the entry
// does not exist. A row with quantity 0 is never observable: both branches
// are single guarded statements.
func (r *cartRepository) DecrementOrDelete(cartID, itemID string) (*model.CartEntry, bool, error) {
	logger.Debug("Decrementing cart entry in database", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	})

	var entry model.CartEntry
	deleted := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.CartEntry{}).
			Where("cart_id = ? AND item_id = ? AND quantity > 1", cartID, itemID).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - 1"),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("cart_id = ? AND item_id = ?", cartID, itemID).First(&entry).Error
		}

		// Quantity is 1 (or the entry is gone): the 1 -> 0 transition is a
		// delete, never an update.
		res = tx.Where("cart_id = ? AND item_id = ? AND quantity <= 1", cartID, itemID).
			Delete(&model.CartEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		deleted = true
		return nil
	})
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to decrement cart entry in database", err, map[string]interface{}{
				"cart_id": cartID,
				"item_id": itemID,
			})
		}
		return nil, false, err
	}

	if deleted {
		return nil, true, nil
	}
	return &entry, false, nil
}

// Remove deletes the entry unconditionally, regardless of quantity.
func (r *cartRepository) Remove(cartID, itemID string) error {
	logger.Debug("Removing cart entry from database", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	})

	res := r.db.Where("cart_id = ? AND item_id = ?", cartID, itemID).Delete(&model.CartEntry{})
	if res.Error != nil {
		logger.Error("Failed to remove cart entry from database", res.Error, map[string]interface{}{
			"cart_id": cartID,
			"item_id": itemID,
		})
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
