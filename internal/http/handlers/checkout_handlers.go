package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/storefront/internal/engine"
	"github.com/rogerio-castellano/storefront/internal/models"
)

func orderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Customer: CustomerResponse{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		Total:      o.Total,
		TotalLabel: money(o.Total),
	}
}

func orderResponses(orders []models.Order) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = orderResponse(o)
	}
	return resp
}

// CheckoutHandler godoc
// @Summary Validate customer input and commit the cart as an order
// @Description All three customer fields are validated independently so the
// @Description response can carry several field errors at once. A valid
// @Description checkout appends an order and leaves the cart empty with the
// @Description promo cleared.
// @Tags checkout
// @Accept json
// @Produce json
// @Param customer body CheckoutRequest true "Customer details"
// @Success 201 {object} CheckoutResult
// @Failure 400 {object} []engine.FieldError
// @Failure 409 {string} string "Cart is empty"
// @Router /checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	fieldErrors := engine.ValidateOrderInput(req.Name, req.Phone, req.Address)
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, fieldErrors)
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	s := currentSession(w, r)
	var order models.Order
	committed := false
	dirty := s.Update(func(state *models.AppState) bool {
		order, committed = engine.CommitOrder(state, cat, promos, customer, time.Now())
		return committed
	})
	if !committed {
		http.Error(w, "cart is empty", http.StatusConflict)
		return
	}
	if dirty {
		sessions.Persist(r.Context(), s)
	}

	var resp CheckoutResult
	s.View(func(state *models.AppState) {
		resp = CheckoutResult{Order: orderResponse(order), Cart: cartResponse(state)}
	})
	writeJSON(w, http.StatusCreated, resp)
}

// GetOrdersHandler godoc
// @Summary Order history for the current session
// @Tags checkout
// @Produce json
// @Success 200 {array} OrderResponse
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	var resp []OrderResponse
	s.View(func(state *models.AppState) {
		resp = orderResponses(state.Orders)
	})
	writeJSON(w, http.StatusOK, resp)
}
