package engine

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/promo"
)

// FieldError describes a single invalid checkout field.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Optional leading +, one digit, then at least eight more characters drawn
// from digits, spaces, parentheses and hyphens.
var phonePattern = regexp.MustCompile(`^\+?\d[\d\s()-]{8,}$`)

// ValidateOrderInput checks the three customer fields independently, so
// every invalid field is reported at once instead of stopping at the first.
// An empty slice means the input is valid.
func ValidateOrderInput(name, phone, address string) []FieldError {
	errs := []FieldError{}
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		errs = append(errs, FieldError{Field: "name", Description: "name must be at least 2 characters"})
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		errs = append(errs, FieldError{Field: "phone", Description: "invalid phone number"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(address)) < 6 {
		errs = append(errs, FieldError{Field: "address", Description: "address must be at least 6 characters"})
	}
	return errs
}

// CommitOrder turns the current cart into an order: it prices the cart,
// appends an order with a timestamp-derived id, and clears the cart (promo
// included) as part of the same step. Checkout on an empty cart is blocked
// and nothing changes. The id is the commit time in milliseconds, bumped
// past the previous order's id when two commits land in the same
// millisecond.
func CommitOrder(state *models.AppState, cat *catalog.Catalog, promos promo.Table, customer models.Customer, now time.Time) (models.Order, bool) {
	if len(state.Cart.Items) == 0 {
		return models.Order{}, false
	}

	totals := CalcTotals(&state.Cart, cat, promos)

	id := now.UnixMilli()
	if n := len(state.Orders); n > 0 && id <= state.Orders[n-1].ID {
		id = state.Orders[n-1].ID + 1
	}

	order := models.Order{
		ID:        id,
		CreatedAt: now.UnixMilli(),
		Customer:  customer,
		Total:     totals.Total,
	}
	state.Orders = append(state.Orders, order)
	ClearCart(&state.Cart)
	return order, true
}
