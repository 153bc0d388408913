package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/internal/app/service"
	resterr "github.com/tastebite/tastebite-backend/internal/errors"
	"github.com/tastebite/tastebite-backend/internal/middleware"
)

// Failure messages are part of the wire contract and asserted by clients.
const (
	msgMenuFetchFailed  = "Could not fetch menu right now. Please try again."
	msgCartFetchFailed  = "Could not fetch cart items right now. Please try again."
	msgCartUpdateFailed = "Could not update cart right now. Please try again."
	msgCartItemNotFound = "Cart item not found."
	msgCartRemoveFailed = "Cannot remove item from cart. Please try again."
	msgInvalidMenuItem  = "Menu item data is invalid."
	msgMenuCreateFailed = "Could not add menu item right now. Please try again."
)

type RestaurantController struct {
	menuService service.MenuService
	cartService service.CartService
}

func NewRestaurantController(menuService service.MenuService, cartService service.CartService) *RestaurantController {
	return &RestaurantController{
		menuService: menuService,
		cartService: cartService,
	}
}

// GetMenu returns the menu, optionally filtered by cuisine
// GET /api/restaurant/getMenu?cuisine=<optional>
func (ctrl *RestaurantController) GetMenu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cuisine := c.Query("cuisine")

	items, err := ctrl.menuService.ListMenu(cuisine)
	if err != nil {
		info := resterr.ParseError(err)
		log.Error("Failed to fetch menu", err, map[string]interface{}{
			"cuisine": cuisine,
			"code":    info.Code,
		})
		resterr.FailOK(c, msgMenuFetchFailed)
		return
	}

	if items == nil {
		items = []model.MenuItem{}
	}

	log.Info("Menu fetched successfully", map[string]interface{}{
		"cuisine": cuisine,
		"count":   len(items),
	})

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"menu":   items,
	})
}

// GetCartItems returns every entry in the cart
// GET /api/restaurant/getCartItems
func (ctrl *RestaurantController) GetCartItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	entries, err := ctrl.cartService.GetCart(model.DefaultCartID)
	if err != nil {
		info := resterr.ParseError(err)
		log.Error("Failed to fetch cart items", err, map[string]interface{}{
			"code": info.Code,
		})
		resterr.FailOK(c, msgCartFetchFailed)
		return
	}

	if entries == nil {
		entries = []model.CartEntry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"cart":   entries,
	})
}

// IncreaseCartItem bumps the quantity for an item, creating the entry at
// quantity 1 when absent
// PATCH /api/restaurant/increaseCartItem/:id
func (ctrl *RestaurantController) IncreaseCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	entry, err := ctrl.cartService.IncreaseItem(model.DefaultCartID, id)
	if err != nil {
		info := resterr.ParseError(err)
		log.Error("Failed to increase cart item", err, map[string]interface{}{
			"item_id": id,
			"code":    info.Code,
		})
		resterr.FailOK(c, msgCartUpdateFailed)
		return
	}

	log.Info("Cart item increased", map[string]interface{}{
		"item_id":  id,
		"quantity": entry.Quantity,
	})

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"cartItem": entry,
	})
}

// DecreaseCartItem lowers the quantity for an item. The 1 -> 0 transition
// deletes the entry but still reports status:true, with cartItem omitted;
// the contract does not distinguish the two outcomes.
// PATCH /api/restaurant/decreaseCartItem/:id
func (ctrl *RestaurantController) DecreaseCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	entry, deleted, err := ctrl.cartService.DecreaseItem(model.DefaultCartID, id)
	if err != nil {
		if errors.Is(err, service.ErrCartEntryNotFound) {
			log.Warn("Cart item not found for decrease", map[string]interface{}{
				"item_id": id,
			})
			resterr.FailOK(c, msgCartItemNotFound)
			return
		}
		info := resterr.ParseError(err)
		log.Error("Failed to decrease cart item", err, map[string]interface{}{
			"item_id": id,
			"code":    info.Code,
		})
		resterr.FailOK(c, msgCartUpdateFailed)
		return
	}

	if deleted {
		log.Info("Cart item deleted by decrease", map[string]interface{}{
			"item_id": id,
		})
		c.JSON(http.StatusOK, gin.H{"status": true})
		return
	}

	log.Info("Cart item decreased", map[string]interface{}{
		"item_id":  id,
		"quantity": entry.Quantity,
	})

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"cartItem": entry,
	})
}

// RemoveCartItem deletes an entry regardless of quantity. The one route
// that signals failure with a non-200 status code.
// DELETE /api/restaurant/removeCartItem/:id
func (ctrl *RestaurantController) RemoveCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	if err := ctrl.cartService.RemoveItem(model.DefaultCartID, id); err != nil {
		if errors.Is(err, service.ErrCartEntryNotFound) {
			log.Warn("Cart item not found for removal", map[string]interface{}{
				"item_id": id,
			})
			resterr.NotFoundResp(c, msgCartRemoveFailed)
			return
		}
		info := resterr.ParseError(err)
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"item_id": id,
			"code":    info.Code,
		})
		resterr.NotFoundResp(c, msgCartRemoveFailed)
		return
	}

	log.Info("Cart item removed", map[string]interface{}{
		"item_id": id,
	})

	c.JSON(http.StatusOK, gin.H{"status": true})
}

type AddMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// AddMenuItem creates a menu item
// POST /api/restaurant/addMenuItem
func (ctrl *RestaurantController) AddMenuItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add menu item request", map[string]interface{}{
			"error": err.Error(),
		})
		resterr.Fail(c, http.StatusBadRequest, msgInvalidMenuItem)
		return
	}

	item := &model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	}

	if err := ctrl.menuService.AddMenuItem(item); err != nil {
		if errors.Is(err, service.ErrInvalidMenuItem) {
			resterr.Fail(c, http.StatusBadRequest, msgInvalidMenuItem)
			return
		}
		info := resterr.ParseError(err)
		log.Error("Failed to add menu item", err, map[string]interface{}{
			"name": req.Name,
			"code": info.Code,
		})
		resterr.FailOK(c, msgMenuCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   true,
		"menuItem": item,
	})
}
