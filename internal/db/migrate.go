package db

import (
	"github.com/google/uuid"
	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.MenuItem{},
		&model.CartEntry{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds the development sample menu if the menu table is empty.
func Seed() error {
	var count int64
	if err := DB.Model(&model.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Menu already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding sample menu...")

	items := SampleMenu()
	for i := range items {
		if err := DB.Create(&items[i]).Error; err != nil {
			logger.Error("Failed to create menu item", err, map[string]interface{}{
				"name": items[i].Name,
			})
			return err
		}
	}

	logger.Info("Sample menu seeded successfully", map[string]interface{}{
		"total_items": len(items),
	})
	return nil
}

// SampleMenu returns the built-in development menu.
func SampleMenu() []model.MenuItem {
	items := []model.MenuItem{
		{Name: "Greek Salad", Description: "Fresh cucumber, tomato, feta and olives", Price: 12.00, Category: "Salad", Image: "/images/greek_salad.png"},
		{Name: "Veg Salad", Description: "Seasonal vegetables with house dressing", Price: 18.00, Category: "Salad", Image: "/images/veg_salad.png"},
		{Name: "Chicken Rolls", Description: "Grilled chicken wrapped in flatbread", Price: 20.00, Category: "Rolls", Image: "/images/chicken_rolls.png"},
		{Name: "Veg Rolls", Description: "Crisp vegetable spring rolls", Price: 15.00, Category: "Rolls", Image: "/images/veg_rolls.png"},
		{Name: "Ripple Ice Cream", Description: "Raspberry ripple, two scoops", Price: 14.00, Category: "Deserts", Image: "/images/ripple_ice_cream.png"},
		{Name: "Chicken Sandwich", Description: "Roast chicken, lettuce and aioli on sourdough", Price: 12.00, Category: "Sandwich", Image: "/images/chicken_sandwich.png"},
		{Name: "Cheese Pasta", Description: "Four cheese sauce over penne", Price: 5.99, Category: "Pasta", Image: "/images/cheese_pasta.png"},
		{Name: "Butter Noodles", Description: "Egg noodles tossed in garlic butter", Price: 14.00, Category: "Noodles", Image: "/images/butter_noodles.png"},
	}
	for i := range items {
		items[i].ID = uuid.New().String()
	}
	return items
}
