package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/tastebite/tastebite-backend/pkg/logger"
	"github.com/tastebite/tastebite-backend/pkg/session"
)

// CartView is the client-side cart state: reconciled line items plus the
// promo state, backed by the restaurant API and a session store.
//
// The server is the only authority for quantities. Every mutation goes to
// the API and is followed by a full reload before the view changes; there
// is no optimistic local update. On any failure the view keeps its prior
// state.
type CartView struct {
	client    *Client
	session   session.Store
	validator PromoValidator

	mu    sync.Mutex
	lines []LineItem
	promo PromoState
}

// NewCartView creates a view over the given client and session store. A
// previously submitted promo code is restored from the session but stays
// invalid until resubmitted, matching the storefront behavior.
func NewCartView(ctx context.Context, client *Client, sess session.Store, validator PromoValidator) *CartView {
	if validator == nil {
		validator = NewFixedDiscountValidator(DefaultDiscount)
	}

	v := &CartView{
		client:    client,
		session:   sess,
		validator: validator,
	}

	var code string
	if found, err := sess.Get(ctx, session.KeyPromoCode, &code); err == nil && found {
		v.promo.Code = code
	}

	return v
}

// Load fetches the menu and the cart concurrently and reconciles them. Both
// fetches run to completion; a failure in one does not stop the other, and
// each is reported on its own. The view is only replaced when both succeed.
func (v *CartView) Load(ctx context.Context) error {
	var (
		wg      sync.WaitGroup
		menu    []MenuItem
		entries []CartEntry
		menuErr error
		cartErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		menu, menuErr = v.client.GetMenu(ctx, "")
	}()
	go func() {
		defer wg.Done()
		entries, cartErr = v.client.GetCartItems(ctx)
	}()
	wg.Wait()

	if menuErr != nil {
		logger.Warn("Failed to fetch menu for cart view", map[string]interface{}{
			"error": menuErr.Error(),
		})
	}
	if cartErr != nil {
		logger.Warn("Failed to fetch cart for cart view", map[string]interface{}{
			"error": cartErr.Error(),
		})
	}
	if menuErr != nil || cartErr != nil {
		return errors.Join(menuErr, cartErr)
	}

	v.mu.Lock()
	v.lines = Reconcile(entries, menu)
	v.mu.Unlock()
	return nil
}

// Lines returns the current reconciled line items.
func (v *CartView) Lines() []LineItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	lines := make([]LineItem, len(v.lines))
	copy(lines, v.lines)
	return lines
}

// Empty reports whether the cart has no line items; callers render the
// empty state instead of a table.
func (v *CartView) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.lines) == 0
}

// Summary computes totals from the current lines and promo state.
func (v *CartView) Summary() Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Summarize(v.lines, v.promo)
}

// Promo returns the current promo state.
func (v *CartView) Promo() PromoState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.promo
}

// Increase bumps the quantity of id and reloads the whole cart.
func (v *CartView) Increase(ctx context.Context, id string) error {
	if _, err := v.client.IncreaseItem(ctx, id); err != nil {
		return err
	}
	return v.Load(ctx)
}

// Decrease lowers the quantity of id and reloads the whole cart.
func (v *CartView) Decrease(ctx context.Context, id string) error {
	if _, err := v.client.DecreaseItem(ctx, id); err != nil {
		return err
	}
	return v.Load(ctx)
}

// Remove deletes id from the cart and reloads the whole cart.
func (v *CartView) Remove(ctx context.Context, id string) error {
	if err := v.client.RemoveItem(ctx, id); err != nil {
		return err
	}
	return v.Load(ctx)
}

// SubmitPromo applies a promo code. A blank code is rejected with no state
// change and no notification; anything else goes through the validator and,
// when accepted, overwrites the previous promo state and is persisted to
// the session.
func (v *CartView) SubmitPromo(ctx context.Context, code string) (bool, error) {
	discount, ok := v.validator.Validate(code)
	if !ok {
		return false, nil
	}

	v.mu.Lock()
	v.promo = PromoState{Code: code, Valid: true, Discount: discount}
	v.mu.Unlock()

	if err := v.session.Set(ctx, session.KeyPromoCode, code); err != nil {
		logger.Warn("Failed to persist promo code to session", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return true, nil
}

// Checkout snapshots the totals into the session, mirroring the storefront
// handing off to the order page. Amounts are stored as two-decimal strings.
func (v *CartView) Checkout(ctx context.Context) (Summary, error) {
	s := v.Summary()

	if err := v.session.Set(ctx, session.KeySubtotal, FormatAmount(s.Subtotal)); err != nil {
		return s, err
	}
	if err := v.session.Set(ctx, session.KeyShippingCost, FormatAmount(s.Shipping)); err != nil {
		return s, err
	}
	if err := v.session.Set(ctx, session.KeyDiscount, FormatAmount(s.Discount)); err != nil {
		return s, err
	}
	return s, nil
}
