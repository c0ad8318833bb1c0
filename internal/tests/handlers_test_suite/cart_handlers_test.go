package handlers_test_suite

import (
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
)

func TestAddCartItem_TwiceAccumulatesQty(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	addItem(c, "p1")
	w := addItem(c, "p1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var cart handler.CartResponse
	decodeJSON(t, w, &cart)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 cart item, got %d", len(cart.Items))
	}
	if cart.Items[0].Qty != 2 {
		t.Errorf("expected qty 2, got %d", cart.Items[0].Qty)
	}
	if cart.Count != 2 {
		t.Errorf("expected count 2, got %d", cart.Count)
	}
	if cart.Sum != 200.0 {
		t.Errorf("expected sum 200, got %v", cart.Sum)
	}
}

func TestAddCartItem_MissingProductID(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	w := c.do(http.MethodPost, "/cart/items", handler.AddItemRequest{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestChangeQty_DeltaBelowZeroRemovesItem(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	addItem(c, "p1")
	addItem(c, "p2")

	w := c.do(http.MethodPatch, "/cart/items/p1", handler.QuantityAdjustmentRequest{Delta: -1})

	var cart handler.CartResponse
	decodeJSON(t, w, &cart)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 remaining item, got %d", len(cart.Items))
	}
	if cart.Items[0].ID != "p2" {
		t.Errorf("expected remaining item p2, got %s", cart.Items[0].ID)
	}
}

func TestChangeQty_UnknownItemIsNoOp(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	addItem(c, "p1")
	w := c.do(http.MethodPatch, "/cart/items/ghost", handler.QuantityAdjustmentRequest{Delta: 3})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var cart handler.CartResponse
	decodeJSON(t, w, &cart)
	if cart.Count != 1 {
		t.Errorf("expected cart untouched with count 1, got %d", cart.Count)
	}
}

func TestClearCart_ClearsPromoToo(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	addItem(c, "p1")
	c.do(http.MethodPost, "/cart/promo", handler.PromoRequest{Code: "SALE10"})

	w := c.do(http.MethodDelete, "/cart", nil)

	var cart handler.CartResponse
	decodeJSON(t, w, &cart)

	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(cart.Items))
	}
	if cart.Promo != "" {
		t.Errorf("expected promo cleared, got %q", cart.Promo)
	}
}

func TestApplyPromo_LowercaseInputNormalized(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	addItem(c, "p1")
	w := c.do(http.MethodPost, "/cart/promo", handler.PromoRequest{Code: "sale10"})

	var resp handler.PromoResponse
	decodeJSON(t, w, &resp)

	if !resp.OK {
		t.Fatalf("expected promo to apply, got error %q", resp.Error)
	}
	if resp.Cart.Promo != "SALE10" {
		t.Errorf("expected promo SALE10, got %q", resp.Cart.Promo)
	}
	if resp.Cart.Discount != 10.0 {
		t.Errorf("expected discount 10, got %v", resp.Cart.Discount)
	}
}

func TestApplyPromo_UnknownCode(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	c.do(http.MethodPost, "/cart/promo", handler.PromoRequest{Code: "SALE10"})
	w := c.do(http.MethodPost, "/cart/promo", handler.PromoRequest{Code: "NOPE"})

	var resp handler.PromoResponse
	decodeJSON(t, w, &resp)

	if resp.OK {
		t.Fatal("expected promo application to fail")
	}
	if resp.Error != "unknown code" {
		t.Errorf("expected error 'unknown code', got %q", resp.Error)
	}
	if resp.Cart.Promo != "SALE10" {
		t.Errorf("expected stored promo untouched, got %q", resp.Cart.Promo)
	}
}

func TestApplyPromo_BlankClearsStoredPromo(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	c.do(http.MethodPost, "/cart/promo", handler.PromoRequest{Code: "HALF"})
	w := c.do(http.MethodPost, "/cart/promo", handler.PromoRequest{Code: "   "})

	var resp handler.PromoResponse
	decodeJSON(t, w, &resp)

	if !resp.OK {
		t.Fatalf("expected blank code to succeed, got error %q", resp.Error)
	}
	if resp.Cart.Promo != "" {
		t.Errorf("expected promo cleared, got %q", resp.Cart.Promo)
	}
}

func TestCart_PersistsAcrossRequestsInOneSession(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	addItem(c, "p3")

	w := c.do(http.MethodGet, "/cart", nil)
	var cart handler.CartResponse
	decodeJSON(t, w, &cart)

	if cart.Count != 1 || len(cart.Items) != 1 || cart.Items[0].ID != "p3" {
		t.Errorf("expected p3 in cart on follow-up request, got %+v", cart.Items)
	}
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	t.Cleanup(resetState)
	first := newClient(t)
	second := newClient(t)

	addItem(first, "p1")

	w := second.do(http.MethodGet, "/cart", nil)
	var cart handler.CartResponse
	decodeJSON(t, w, &cart)

	if cart.Count != 0 {
		t.Errorf("expected second session to start empty, got count %d", cart.Count)
	}
}

func TestCart_UnresolvedItemStillListedButUnpriced(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	addItem(c, "discontinued")
	w := c.do(http.MethodGet, "/cart", nil)

	var cart handler.CartResponse
	decodeJSON(t, w, &cart)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
	if cart.Sum != 0 {
		t.Errorf("expected unresolved item to price at 0, got %v", cart.Sum)
	}
}
