package repository

import (
	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/pkg/logger"
	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(item *model.MenuItem) error
	BulkCreate(items []model.MenuItem, batchSize int) error
	FindAll() ([]model.MenuItem, error)
	FindByCategory(category string) ([]model.MenuItem, error)
	FindByID(id string) (*model.MenuItem, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *model.MenuItem) error {
	logger.Debug("Creating menu item in database", map[string]interface{}{
		"name":     item.Name,
		"category": item.Category,
	})

	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create menu item in database", err, map[string]interface{}{
			"name":     item.Name,
			"category": item.Category,
		})
		return err
	}
	return nil
}

func (r *menuRepository) BulkCreate(items []model.MenuItem, batchSize int) error {
	logger.Debug("Bulk creating menu items in database", map[string]interface{}{
		"count":      len(items),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(items, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create menu items in database", err, map[string]interface{}{
			"count": len(items),
		})
		return err
	}
	return nil
}

func (r *menuRepository) FindAll() ([]model.MenuItem, error) {
	var items []model.MenuItem
	// Listing order is store-defined; created_at keeps it stable but callers
	// must not depend on it.
	err := r.db.Order("created_at").Find(&items).Error
	if err != nil {
		logger.Error("Failed to find menu items in database", err, nil)
		return nil, err
	}

	logger.Debug("Menu items found in database", map[string]interface{}{
		"count": len(items),
	})
	return items, nil
}

func (r *menuRepository) FindByCategory(category string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	// Exact, case-sensitive match. An unknown category yields an empty list,
	// not an error.
	err := r.db.Where("category = ?", category).Order("created_at").Find(&items).Error
	if err != nil {
		logger.Error("Failed to find menu items by category in database", err, map[string]interface{}{
			"category": category,
		})
		return nil, err
	}

	logger.Debug("Menu items found by category in database", map[string]interface{}{
		"category": category,
		"count":    len(items),
	})
	return items, nil
}

func (r *menuRepository) FindByID(id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find menu item by ID in database", err, map[string]interface{}{
				"menu_item_id": id,
			})
		}
		return nil, err
	}
	return &item, nil
}
