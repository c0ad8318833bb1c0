package store

import (
	"math"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// Hydrate merges a persisted state over the defaults. Each top-level field
// that is present replaces its default counterpart after normalization;
// absent or unusable fields keep the default. MaxPrice is always reclamped
// into range, whatever its origin.
func Hydrate(defaults *models.AppState, saved *PersistedState) *models.AppState {
	state := &models.AppState{
		Filters: defaults.Filters,
		Cart:    defaults.Cart,
		Orders:  defaults.Orders,
	}

	if saved != nil {
		if saved.Filters != nil {
			state.Filters = mergeFilters(defaults.Filters, saved.Filters)
		}
		if saved.Cart != nil {
			state.Cart = normalizeCart(saved.Cart)
		}
		if saved.Orders != nil {
			state.Orders = saved.Orders
		}
	}

	state.Filters.MaxPrice = clamp(state.Filters.MaxPrice, models.MinPriceCeiling, models.MaxPriceCeiling)
	return state
}

func mergeFilters(base models.Filters, saved *PersistedFilters) models.Filters {
	if saved.Q != nil {
		base.Q = *saved.Q
	}
	if saved.Category != nil && *saved.Category != "" {
		base.Category = *saved.Category
	}
	if saved.Sort != nil && models.ValidSort(*saved.Sort) {
		base.Sort = *saved.Sort
	}
	if saved.MaxPrice != nil {
		base.MaxPrice = *saved.MaxPrice
	}
	return base
}

// normalizeCart drops items that violate the cart invariants (blank id,
// non-positive quantity, duplicate id) and re-normalizes the promo code.
func normalizeCart(saved *models.Cart) models.Cart {
	cart := models.Cart{Items: []models.CartItem{}}
	seen := make(map[string]bool)
	for _, it := range saved.Items {
		if it.ID == "" || it.Qty <= 0 || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		cart.Items = append(cart.Items, it)
	}
	cart.Promo = strings.ToUpper(strings.TrimSpace(saved.Promo))
	return cart
}

func clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}
