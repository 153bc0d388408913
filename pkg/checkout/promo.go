package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDiscount is the flat amount taken off when a promo code is applied.
var DefaultDiscount = decimal.RequireFromString("7.99")

// PromoState is the session-scoped promo code and its effect. It is never
// persisted server-side; resubmitting overwrites it, and only clearing the
// session resets it.
type PromoState struct {
	Code     string
	Valid    bool
	Discount decimal.Decimal
}

// PromoValidator decides whether a promo code is accepted and what discount
// it grants. The boundary exists so a real code registry can replace the
// fixed-discount behavior without touching reconciliation or totals.
type PromoValidator interface {
	Validate(code string) (decimal.Decimal, bool)
}

type fixedDiscountValidator struct {
	amount decimal.Decimal
}

// NewFixedDiscountValidator accepts any non-blank code and grants a fixed
// discount, matching the storefront's client-only validation.
func NewFixedDiscountValidator(amount decimal.Decimal) PromoValidator {
	return fixedDiscountValidator{amount: amount}
}

func (v fixedDiscountValidator) Validate(code string) (decimal.Decimal, bool) {
	if strings.TrimSpace(code) == "" {
		return decimal.Zero, false
	}
	return v.amount, true
}
