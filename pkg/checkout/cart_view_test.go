package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebite/tastebite-backend/pkg/session"
)

// fakeRestaurant is an in-memory stand-in for the restaurant API with just
// enough behavior to exercise the cart view.
type fakeRestaurant struct {
	mu   sync.Mutex
	menu []MenuItem
	cart map[string]int
}

func newFakeRestaurant(menu []MenuItem) *fakeRestaurant {
	return &fakeRestaurant{menu: menu, cart: make(map[string]int)}
}

func (f *fakeRestaurant) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.URL.Path == "/getMenu":
			json.NewEncoder(w).Encode(map[string]interface{}{"status": true, "menu": f.menu})
		case r.URL.Path == "/getCartItems":
			entries := make([]CartEntry, 0, len(f.cart))
			for id, qty := range f.cart {
				entries = append(entries, CartEntry{ID: id, Quantity: qty})
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"status": true, "cart": entries})
		case r.Method == http.MethodPatch && len(r.URL.Path) > len("/increaseCartItem/") && r.URL.Path[:len("/increaseCartItem/")] == "/increaseCartItem/":
			id := r.URL.Path[len("/increaseCartItem/"):]
			f.cart[id]++
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":   true,
				"cartItem": CartEntry{ID: id, Quantity: f.cart[id]},
			})
		case r.Method == http.MethodPatch && len(r.URL.Path) > len("/decreaseCartItem/") && r.URL.Path[:len("/decreaseCartItem/")] == "/decreaseCartItem/":
			id := r.URL.Path[len("/decreaseCartItem/"):]
			qty, ok := f.cart[id]
			if !ok {
				json.NewEncoder(w).Encode(map[string]interface{}{"status": false, "msg": "Cart item not found."})
				return
			}
			if qty <= 1 {
				delete(f.cart, id)
				json.NewEncoder(w).Encode(map[string]interface{}{"status": true})
				return
			}
			f.cart[id] = qty - 1
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":   true,
				"cartItem": CartEntry{ID: id, Quantity: f.cart[id]},
			})
		case r.Method == http.MethodDelete:
			id := r.URL.Path[len("/removeCartItem/"):]
			if _, ok := f.cart[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]interface{}{"status": false, "msg": "Cannot remove item from cart. Please try again."})
				return
			}
			delete(f.cart, id)
			json.NewEncoder(w).Encode(map[string]interface{}{"status": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func setupCartViewTest(t *testing.T) (*CartView, *fakeRestaurant, session.Store) {
	fake := newFakeRestaurant([]MenuItem{
		{ID: "pasta", Name: "Cheese Pasta", Price: 5.99, Category: "Pasta"},
		{ID: "salad", Name: "Greek Salad", Price: 12.00, Category: "Salad"},
	})

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	sess := session.NewMemoryStore()
	view := NewCartView(context.Background(), client, sess, nil)
	return view, fake, sess
}

func TestCartView_LoadEmptyCart(t *testing.T) {
	view, _, _ := setupCartViewTest(t)

	require.NoError(t, view.Load(context.Background()))
	assert.True(t, view.Empty())
	assert.Len(t, view.Lines(), 0)
}

func TestCartView_IncreaseThenLoad(t *testing.T) {
	view, _, _ := setupCartViewTest(t)

	require.NoError(t, view.Increase(context.Background(), "pasta"))
	require.NoError(t, view.Increase(context.Background(), "pasta"))

	lines := view.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Cheese Pasta", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.False(t, view.Empty())
}

func TestCartView_Summary(t *testing.T) {
	view, _, _ := setupCartViewTest(t)

	require.NoError(t, view.Increase(context.Background(), "pasta"))
	require.NoError(t, view.Increase(context.Background(), "pasta"))

	s := view.Summary()
	assert.Equal(t, "11.98", FormatAmount(s.Subtotal))
	assert.Equal(t, "16.98", FormatAmount(s.Total))
}

func TestCartView_DecreaseToZeroRemovesLine(t *testing.T) {
	view, _, _ := setupCartViewTest(t)

	require.NoError(t, view.Increase(context.Background(), "pasta"))
	require.NoError(t, view.Decrease(context.Background(), "pasta"))

	assert.True(t, view.Empty())
}

func TestCartView_Remove(t *testing.T) {
	view, _, _ := setupCartViewTest(t)

	require.NoError(t, view.Increase(context.Background(), "pasta"))
	require.NoError(t, view.Increase(context.Background(), "salad"))
	require.NoError(t, view.Remove(context.Background(), "pasta"))

	lines := view.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "salad", lines[0].ID)
}

func TestCartView_SubmitPromo(t *testing.T) {
	view, _, sess := setupCartViewTest(t)

	require.NoError(t, view.Increase(context.Background(), "pasta"))
	require.NoError(t, view.Increase(context.Background(), "pasta"))

	ok, err := view.SubmitPromo(context.Background(), "SAVE10")
	require.NoError(t, err)
	assert.True(t, ok)

	promo := view.Promo()
	assert.True(t, promo.Valid)
	assert.Equal(t, "SAVE10", promo.Code)

	s := view.Summary()
	assert.Equal(t, "8.99", FormatAmount(s.Total))

	// The code is persisted to the session
	var stored string
	found, err := sess.Get(context.Background(), session.KeyPromoCode, &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "SAVE10", stored)
}

func TestCartView_SubmitPromo_BlankRejected(t *testing.T) {
	view, _, _ := setupCartViewTest(t)

	ok, err := view.SubmitPromo(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, view.Promo().Valid)
}

func TestCartView_SubmitPromo_ResubmitOverwrites(t *testing.T) {
	view, _, _ := setupCartViewTest(t)

	view.SubmitPromo(context.Background(), "FIRST")
	view.SubmitPromo(context.Background(), "SECOND")

	assert.Equal(t, "SECOND", view.Promo().Code)
	assert.True(t, view.Promo().Valid)
}

func TestCartView_RestoresPromoCodeFromSession(t *testing.T) {
	view, _, sess := setupCartViewTest(t)

	require.NoError(t, sess.Set(context.Background(), session.KeyPromoCode, "SAVED"))

	client := view.client
	restored := NewCartView(context.Background(), client, sess, nil)

	// The code comes back but stays invalid until resubmitted
	promo := restored.Promo()
	assert.Equal(t, "SAVED", promo.Code)
	assert.False(t, promo.Valid)
}

func TestCartView_CheckoutPersistsTotals(t *testing.T) {
	view, _, sess := setupCartViewTest(t)

	require.NoError(t, view.Increase(context.Background(), "pasta"))
	require.NoError(t, view.Increase(context.Background(), "pasta"))
	view.SubmitPromo(context.Background(), "SAVE10")

	s, err := view.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8.99", FormatAmount(s.Total))

	var subtotal, shipping, discount string
	sess.Get(context.Background(), session.KeySubtotal, &subtotal)
	sess.Get(context.Background(), session.KeyShippingCost, &shipping)
	sess.Get(context.Background(), session.KeyDiscount, &discount)

	assert.Equal(t, "11.98", subtotal)
	assert.Equal(t, "5.00", shipping)
	assert.Equal(t, "7.99", discount)
}

func TestCartView_LoadFailureKeepsPriorState(t *testing.T) {
	fake := newFakeRestaurant([]MenuItem{{ID: "pasta", Name: "Cheese Pasta", Price: 5.99}})
	server := httptest.NewServer(fake.handler())

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	view := NewCartView(context.Background(), client, session.NewMemoryStore(), nil)
	require.NoError(t, view.Increase(context.Background(), "pasta"))
	require.Len(t, view.Lines(), 1)

	server.Close()

	err = view.Load(context.Background())
	assert.Error(t, err)
	// Prior lines survive the failed reload
	assert.Len(t, view.Lines(), 1)
}
