package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/internal/app/repository"
	"github.com/tastebite/tastebite-backend/pkg/logger"
)

var (
	ErrInvalidMenuItem = errors.New("invalid menu item")
)

type MenuService interface {
	ListMenu(cuisine string) ([]model.MenuItem, error)
	AddMenuItem(item *model.MenuItem) error
	ImportMenu(items []model.MenuItem) error
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

// ListMenu returns the menu, optionally narrowed to one cuisine category.
// An empty filter means "filter cleared" and behaves like no filter at all.
func (s *menuService) ListMenu(cuisine string) ([]model.MenuItem, error) {
	logger.Debug("Fetching menu", map[string]interface{}{
		"cuisine": cuisine,
	})

	var items []model.MenuItem
	var err error
	if cuisine == "" {
		items, err = s.menuRepo.FindAll()
	} else {
		items, err = s.menuRepo.FindByCategory(cuisine)
	}
	if err != nil {
		logger.Error("Failed to fetch menu", err, map[string]interface{}{
			"cuisine": cuisine,
		})
		return nil, err
	}

	logger.Info("Menu fetched successfully", map[string]interface{}{
		"cuisine": cuisine,
		"count":   len(items),
	})
	return items, nil
}

func (s *menuService) AddMenuItem(item *model.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price < 0 {
		return ErrInvalidMenuItem
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	if err := s.menuRepo.Create(item); err != nil {
		logger.Error("Failed to add menu item", err, map[string]interface{}{
			"name": item.Name,
		})
		return err
	}

	logger.Info("Menu item added", map[string]interface{}{
		"menu_item_id": item.ID,
		"name":         item.Name,
		"category":     item.Category,
	})
	return nil
}

func (s *menuService) ImportMenu(items []model.MenuItem) error {
	for i := range items {
		if strings.TrimSpace(items[i].Name) == "" || items[i].Price < 0 {
			return ErrInvalidMenuItem
		}
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
	}

	if err := s.menuRepo.BulkCreate(items, 100); err != nil {
		logger.Error("Failed to import menu", err, map[string]interface{}{
			"count": len(items),
		})
		return err
	}

	logger.Info("Menu imported", map[string]interface{}{
		"count": len(items),
	})
	return nil
}
