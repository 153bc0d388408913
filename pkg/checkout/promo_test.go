package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedDiscountValidator_AcceptsAnyNonBlankCode(t *testing.T) {
	v := NewFixedDiscountValidator(DefaultDiscount)

	discount, ok := v.Validate("SAVE10")
	assert.True(t, ok)
	assert.Equal(t, "7.99", discount.StringFixed(2))

	_, ok = v.Validate("anything at all")
	assert.True(t, ok)
}

func TestFixedDiscountValidator_RejectsBlankCode(t *testing.T) {
	v := NewFixedDiscountValidator(DefaultDiscount)

	_, ok := v.Validate("")
	assert.False(t, ok)

	_, ok = v.Validate("   ")
	assert.False(t, ok)
}
