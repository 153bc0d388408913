package service

import (
	"errors"

	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/internal/app/repository"
	"github.com/tastebite/tastebite-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartEntryNotFound = errors.New("cart entry not found")
)

type CartService interface {
	GetCart(cartID string) ([]model.CartEntry, error)
	IncreaseItem(cartID, itemID string) (*model.CartEntry, error)
	DecreaseItem(cartID, itemID string) (*model.CartEntry, bool, error)
	RemoveItem(cartID, itemID string) error
}

type cartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

func (s *cartService) GetCart(cartID string) ([]model.CartEntry, error) {
	entries, err := s.cartRepo.List(cartID)
	if err != nil {
		logger.Error("Failed to fetch cart", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}

	logger.Info("Cart fetched successfully", map[string]interface{}{
		"cart_id": cartID,
		"count":   len(entries),
	})
	return entries, nil
}

// IncreaseItem bumps the quantity for itemID, creating the entry at
// quantity 1 when it does not exist yet. The item id is not checked against
// the menu: entries for unknown ids are allowed and rendered as orphans.
func (s *cartService) IncreaseItem(cartID, itemID string) (*model.CartEntry, error) {
	logger.Info("Increasing cart item", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	})

	entry, err := s.cartRepo.UpsertIncrement(cartID, itemID)
	if err != nil {
		logger.Error("Failed to increase cart item", err, map[string]interface{}{
			"cart_id": cartID,
			"item_id": itemID,
		})
		return nil, err
	}
	return entry, nil
}

// DecreaseItem lowers the quantity for itemID. At quantity 1 the entry is
// deleted and deleted=true is reported; a missing entry yields
// ErrCartEntryNotFound with no state change.
func (s *cartService) DecreaseItem(cartID, itemID string) (*model.CartEntry, bool, error) {
	logger.Info("Decreasing cart item", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	})

	entry, deleted, err := s.cartRepo.DecrementOrDelete(cartID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cart item not found for decrease", map[string]interface{}{
				"cart_id": cartID,
				"item_id": itemID,
			})
			return nil, false, ErrCartEntryNotFound
		}
		logger.Error("Failed to decrease cart item", err, map[string]interface{}{
			"cart_id": cartID,
			"item_id": itemID,
		})
		return nil, false, err
	}
	return entry, deleted, nil
}

func (s *cartService) RemoveItem(cartID, itemID string) error {
	logger.Info("Removing cart item", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	})

	if err := s.cartRepo.Remove(cartID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cart item not found for removal", map[string]interface{}{
				"cart_id": cartID,
				"item_id": itemID,
			})
			return ErrCartEntryNotFound
		}
		logger.Error("Failed to remove cart item", err, map[string]interface{}{
			"cart_id": cartID,
			"item_id": itemID,
		})
		return err
	}
	return nil
}
