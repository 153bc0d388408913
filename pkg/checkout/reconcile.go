package checkout

import "github.com/shopspring/decimal"

// Reconcile merges cart entries with their menu items into display-ready
// line items: one LineItem per entry, in the entries' order. Entry fields
// win over menu fields, so quantity always comes from the cart. An entry
// with no matching menu item keeps zero display fields and a zero price;
// it still counts as a line.
func Reconcile(entries []CartEntry, menu []MenuItem) []LineItem {
	index := make(map[string]MenuItem, len(menu))
	for _, item := range menu {
		index[item.ID] = item
	}

	lines := make([]LineItem, 0, len(entries))
	for _, entry := range entries {
		line := LineItem{
			ID:       entry.ID,
			Quantity: entry.Quantity,
		}
		if item, ok := index[entry.ID]; ok {
			line.Name = item.Name
			line.Description = item.Description
			line.Price = decimal.NewFromFloat(item.Price)
			line.Image = item.Image
			line.Category = item.Category
		}
		lines = append(lines, line)
	}
	return lines
}
