package model

import "time"

// DefaultCartID is the cart used by the public restaurant API. The column
// exists so per-session carts can be keyed later without a schema change;
// it is not exposed on the wire.
const DefaultCartID = "global"

// CartEntry maps a menu item id to a quantity. Invariant: a persisted entry
// always has Quantity >= 1; the 1 -> 0 transition deletes the row instead of
// updating it. ItemID may reference a menu item that no longer exists, such
// orphans are tolerated.
type CartEntry struct {
	CartID    string    `gorm:"primaryKey;size:64;default:'global'" json:"-"`
	ItemID    string    `gorm:"primaryKey;size:36" json:"id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (CartEntry) TableName() string {
	return "cart_entries"
}
