package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_MergesEntriesWithMenu(t *testing.T) {
	menu := []MenuItem{
		{ID: "a", Name: "Greek Salad", Price: 12.00, Category: "Salad"},
		{ID: "b", Name: "Cheese Pasta", Price: 5.99, Category: "Pasta"},
	}
	entries := []CartEntry{
		{ID: "b", Quantity: 2},
		{ID: "a", Quantity: 1},
	}

	lines := Reconcile(entries, menu)
	require.Len(t, lines, 2)

	// Entry order wins, not menu order
	assert.Equal(t, "b", lines[0].ID)
	assert.Equal(t, "Cheese Pasta", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromFloat(5.99)))

	assert.Equal(t, "a", lines[1].ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestReconcile_QuantityComesFromEntry(t *testing.T) {
	menu := []MenuItem{{ID: "a", Name: "Greek Salad", Price: 12.00}}
	entries := []CartEntry{{ID: "a", Quantity: 7}}

	lines := Reconcile(entries, menu)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestReconcile_OrphanedEntryKeptWithZeroPrice(t *testing.T) {
	menu := []MenuItem{{ID: "a", Name: "Greek Salad", Price: 12.00}}
	entries := []CartEntry{
		{ID: "a", Quantity: 1},
		{ID: "gone", Quantity: 3},
	}

	lines := Reconcile(entries, menu)
	require.Len(t, lines, 2)

	orphan := lines[1]
	assert.Equal(t, "gone", orphan.ID)
	assert.Equal(t, 3, orphan.Quantity)
	assert.Empty(t, orphan.Name)
	assert.True(t, orphan.Price.IsZero())
	assert.True(t, orphan.Total().IsZero())
}

func TestReconcile_EmptyCart(t *testing.T) {
	menu := []MenuItem{{ID: "a", Name: "Greek Salad", Price: 12.00}}

	lines := Reconcile(nil, menu)
	assert.Len(t, lines, 0)
}

func TestLineItem_Total(t *testing.T) {
	line := LineItem{Price: decimal.NewFromFloat(5.99), Quantity: 2}
	assert.Equal(t, "11.98", line.Total().StringFixed(2))
}
