package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tastebite/tastebite-backend/config"
	"github.com/tastebite/tastebite-backend/internal/app/model"
	"github.com/tastebite/tastebite-backend/internal/app/repository"
	"github.com/tastebite/tastebite-backend/internal/app/service"
	"github.com/tastebite/tastebite-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path> | --sample")
	}

	arg := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	menuRepo := repository.NewMenuRepository(db.GetDB())
	menuService := service.NewMenuService(menuRepo)

	var items []model.MenuItem
	if arg == "--sample" {
		items = db.SampleMenu()
		fmt.Printf("Using built-in sample menu: %d items\n", len(items))
	} else {
		fmt.Printf("Reading XLSX file: %s\n", arg)
		items, err = readMenuFromXLSX(arg)
		if err != nil {
			log.Fatal("Failed to read XLSX:", err)
		}
	}

	fmt.Printf("Total menu items to import: %d\n", len(items))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	if err := menuService.ImportMenu(items); err != nil {
		log.Fatal("Failed to import menu:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total menu items imported: %d\n", len(items))
}

// readMenuFromXLSX reads menu items from the first sheet. Expected columns:
// name, description, price, image, category. The first row is a header.
func readMenuFromXLSX(filePath string) ([]model.MenuItem, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var items []model.MenuItem
	seen := make(map[string]bool)
	skippedCount := 0
	invalidPriceCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 3 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		priceStr := strings.TrimSpace(row[2])

		var image, category string
		if len(row) > 3 {
			image = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			category = strings.TrimSpace(row[4])
		}

		if name == "" {
			skippedCount++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			invalidPriceCount++
			skippedCount++
			continue
		}

		// Dedupe on name+category
		key := fmt.Sprintf("%s|%s", name, category)
		if seen[key] {
			skippedCount++
			continue
		}
		seen[key] = true

		items = append(items, model.MenuItem{
			Name:        name,
			Description: description,
			Price:       price,
			Image:       image,
			Category:    category,
		})
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid items: %d\n", len(items))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)
	fmt.Printf("  Rows with invalid prices: %d\n", invalidPriceCount)

	return items, nil
}
