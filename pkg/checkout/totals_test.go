package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	lines := []LineItem{
		{Price: decimal.NewFromFloat(5.99), Quantity: 2},
		{Price: decimal.NewFromFloat(12.00), Quantity: 1},
	}

	assert.Equal(t, "23.98", Subtotal(lines).StringFixed(2))
}

func TestSubtotal_Empty(t *testing.T) {
	assert.True(t, Subtotal(nil).IsZero())
}

func TestSummarize_NoPromo(t *testing.T) {
	lines := []LineItem{{Price: decimal.NewFromFloat(5.99), Quantity: 2}}

	s := Summarize(lines, PromoState{})

	assert.Equal(t, "11.98", FormatAmount(s.Subtotal))
	assert.Equal(t, "5.00", FormatAmount(s.Shipping))
	assert.Equal(t, "0.00", FormatAmount(s.Discount))
	assert.Equal(t, "16.98", FormatAmount(s.Total))
}

func TestSummarize_WithPromo(t *testing.T) {
	lines := []LineItem{{Price: decimal.NewFromFloat(5.99), Quantity: 2}}
	promo := PromoState{Code: "SAVE", Valid: true, Discount: DefaultDiscount}

	s := Summarize(lines, promo)

	assert.Equal(t, "11.98", FormatAmount(s.Subtotal))
	assert.Equal(t, "7.99", FormatAmount(s.Discount))
	assert.Equal(t, "8.99", FormatAmount(s.Total))
}

func TestSummarize_InvalidPromoContributesNothing(t *testing.T) {
	lines := []LineItem{{Price: decimal.NewFromFloat(5.99), Quantity: 2}}
	promo := PromoState{Code: "SAVE", Valid: false, Discount: DefaultDiscount}

	s := Summarize(lines, promo)

	assert.Equal(t, "0.00", FormatAmount(s.Discount))
	assert.Equal(t, "16.98", FormatAmount(s.Total))
}

func TestSummarize_EmptyCartStillShipsAndDiscounts(t *testing.T) {
	// Shipping and discount apply regardless of cart contents
	s := Summarize(nil, PromoState{})
	assert.Equal(t, "0.00", FormatAmount(s.Subtotal))
	assert.Equal(t, "5.00", FormatAmount(s.Total))
}

func TestSummarize_DiscountExceedsTotalClampsAtZero(t *testing.T) {
	lines := []LineItem{{Price: decimal.NewFromFloat(1.00), Quantity: 1}}
	promo := PromoState{Code: "SAVE", Valid: true, Discount: DefaultDiscount}

	// 1.00 + 5.00 - 7.99 would be negative; the amount due is clamped
	s := Summarize(lines, promo)
	assert.Equal(t, "0.00", FormatAmount(s.Total))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "11.98", FormatAmount(decimal.RequireFromString("11.98")))
	assert.Equal(t, "5.00", FormatAmount(decimal.NewFromInt(5)))
}
