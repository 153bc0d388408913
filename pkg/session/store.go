package session

import "context"

// Keys persisted by the checkout client, mirroring the browser session of
// the storefront. Values are JSON-encoded scalars.
const (
	KeyPromoCode    = "promo-code"
	KeySubtotal     = "subtotal"
	KeyShippingCost = "shippingCost"
	KeyDiscount     = "discount"
)

// Store is session-scoped key/value storage. Entries live until the session
// is cleared; there is no automatic expiry.
type Store interface {
	// Get decodes the value for key into dest. The boolean reports whether
	// the key was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores the JSON encoding of value under key, overwriting any
	// previous value.
	Set(ctx context.Context, key string, value interface{}) error

	// Clear drops every key in the session.
	Clear(ctx context.Context) error
}
