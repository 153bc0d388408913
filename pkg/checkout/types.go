package checkout

import "github.com/shopspring/decimal"

// MenuItem is the wire shape of one dish as served by getMenu.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// CartEntry is the wire shape of one cart row as served by getCartItems.
type CartEntry struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// LineItem is a cart entry merged with its menu item for display and
// pricing. Quantity always comes from the entry; the display fields come
// from the menu and stay zero-valued for orphaned entries (an entry whose
// id no longer matches any menu item), which are rendered, not rejected.
type LineItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Quantity    int
}

// Total is the line's price times quantity.
func (l LineItem) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type menuResponse struct {
	Status bool       `json:"status"`
	Menu   []MenuItem `json:"menu"`
	Msg    string     `json:"msg"`
}

type cartResponse struct {
	Status bool        `json:"status"`
	Cart   []CartEntry `json:"cart"`
	Msg    string      `json:"msg"`
}

type cartItemResponse struct {
	Status   bool       `json:"status"`
	CartItem *CartEntry `json:"cartItem"`
	Msg      string     `json:"msg"`
}

type statusResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}
