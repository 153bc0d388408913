package checkout

import "github.com/shopspring/decimal"

// ShippingCost is the flat shipping fee applied to every order.
var ShippingCost = decimal.NewFromFloat(5.00)

// Summary holds the derived totals for a cart. All amounts are decimals so
// that 2 x 5.99 is 11.98, not 11.980000000000001.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Subtotal sums price times quantity over the lines. Orphaned lines carry a
// zero price and contribute nothing.
func Subtotal(lines []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Total())
	}
	return sum
}

// Summarize computes the checkout totals for the given lines and promo
// state. The total is clamped at zero: a discount larger than
// subtotal+shipping never produces a negative amount due.
func Summarize(lines []LineItem, promo PromoState) Summary {
	subtotal := Subtotal(lines)

	discount := decimal.Zero
	if promo.Valid {
		discount = promo.Discount
	}

	total := subtotal.Add(ShippingCost).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Summary{
		Subtotal: subtotal,
		Shipping: ShippingCost,
		Discount: discount,
		Total:    total,
	}
}

// FormatAmount renders a currency amount with exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
