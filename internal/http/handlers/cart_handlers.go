package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/storefront/internal/engine"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/session"
)

// cartResponse prices the cart and resolves item titles. Items whose product
// id no longer resolves still appear with their id and quantity; pricing
// skips them.
func cartResponse(state *models.AppState) CartResponse {
	totals := engine.CalcTotals(&state.Cart, cat, promos)

	items := make([]CartItemResponse, len(state.Cart.Items))
	for i, it := range state.Cart.Items {
		item := CartItemResponse{ID: it.ID, Qty: it.Qty}
		if p, ok := cat.ByID(it.ID); ok {
			item.Title = p.Title
			item.Price = p.Price
			item.LineTotal = p.Price * float64(it.Qty)
		}
		items[i] = item
	}

	return CartResponse{
		Items:         items,
		Count:         state.Cart.Count(),
		Promo:         state.Cart.Promo,
		Sum:           totals.Sum,
		Discount:      totals.Discount,
		Total:         totals.Total,
		TotalLabel:    money(totals.Total),
		DiscountLabel: "− " + money(totals.Discount),
	}
}

func respondWithCart(w http.ResponseWriter, s *session.Session, status int) {
	var resp CartResponse
	s.View(func(state *models.AppState) {
		resp = cartResponse(state)
	})
	writeJSON(w, status, resp)
}

// GetCartHandler godoc
// @Summary Current cart with computed totals
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	respondWithCart(w, currentSession(w, r), http.StatusOK)
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}

	s := currentSession(w, r)
	dirty := s.Update(func(state *models.AppState) bool {
		return engine.AddToCart(&state.Cart, req.ProductID)
	})
	if dirty {
		sessions.Persist(r.Context(), s)
	}
	respondWithCart(w, s, http.StatusOK)
}

// ChangeQtyHandler godoc
// @Summary Adjust the quantity of a cart item
// @Description A delta that drops the quantity to zero or below removes the
// @Description item. Adjusting an item that is not in the cart is a no-op.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param adjustment body QuantityAdjustmentRequest true "Quantity delta"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items/{id} [patch]
func ChangeQtyHandler(w http.ResponseWriter, r *http.Request) {
	var req QuantityAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")

	s := currentSession(w, r)
	dirty := s.Update(func(state *models.AppState) bool {
		return engine.ChangeQty(&state.Cart, id, req.Delta)
	})
	if dirty {
		sessions.Persist(r.Context(), s)
	}
	respondWithCart(w, s, http.StatusOK)
}

// ClearCartHandler godoc
// @Summary Empty the cart and forget the promo
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	dirty := s.Update(func(state *models.AppState) bool {
		return engine.ClearCart(&state.Cart)
	})
	if dirty {
		sessions.Persist(r.Context(), s)
	}
	respondWithCart(w, s, http.StatusOK)
}

// ApplyPromoHandler godoc
// @Summary Apply or clear a promo code
// @Description A blank code clears the stored promo. An unknown code leaves
// @Description the cart unchanged and reports ok=false.
// @Tags cart
// @Accept json
// @Produce json
// @Param promo body PromoRequest true "Promo code"
// @Success 200 {object} PromoResponse
// @Failure 400 {string} string "Invalid input"
// @Router /cart/promo [post]
func ApplyPromoHandler(w http.ResponseWriter, r *http.Request) {
	var req PromoRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	s := currentSession(w, r)
	var result engine.PromoResult
	dirty := s.Update(func(state *models.AppState) bool {
		var changed bool
		result, changed = engine.ApplyPromo(&state.Cart, promos, req.Code)
		return changed
	})
	if dirty {
		sessions.Persist(r.Context(), s)
	}

	var resp PromoResponse
	s.View(func(state *models.AppState) {
		resp = PromoResponse{OK: result.OK, Error: result.Error, Cart: cartResponse(state)}
	})
	writeJSON(w, http.StatusOK, resp)
}
