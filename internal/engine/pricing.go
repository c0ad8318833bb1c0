package engine

import (
	"strings"

	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/promo"
)

// Totals is the computed price breakdown for a cart.
type Totals struct {
	Sum      float64 `json:"sum"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// CalcTotals prices a cart against the catalog. Cart items whose product id
// does not resolve are skipped rather than treated as errors, and an unknown
// stored promo code yields zero discount. The discount never exceeds the
// subtotal and the total is never negative.
func CalcTotals(cart *models.Cart, cat *catalog.Catalog, promos promo.Table) Totals {
	var sum float64
	for _, it := range cart.Items {
		p, ok := cat.ByID(it.ID)
		if !ok {
			continue
		}
		sum += p.Price * float64(it.Qty)
	}

	var discount float64
	if cart.Promo != "" {
		if rule, ok := promos.Lookup(cart.Promo); ok {
			switch rule.Type {
			case promo.TypePercent:
				discount = sum * rule.Value / 100
			case promo.TypeFixed:
				discount = rule.Value
			}
		}
	}
	if discount > sum {
		discount = sum
	}

	total := sum - discount
	if total < 0 {
		total = 0
	}
	return Totals{Sum: sum, Discount: discount, Total: total}
}

// PromoResult reports the outcome of applying a promo code. Error is empty
// when OK is true.
type PromoResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ApplyPromo normalizes the code (trim, uppercase) and applies it to the
// cart. A blank code clears the stored promo; that is the remove-promo path,
// not an error. An unknown code leaves the cart untouched. The second return
// value reports whether the cart changed.
func ApplyPromo(cart *models.Cart, promos promo.Table, code string) (PromoResult, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		dirty := cart.Promo != ""
		cart.Promo = ""
		return PromoResult{OK: true}, dirty
	}

	if _, ok := promos.Lookup(normalized); !ok {
		return PromoResult{OK: false, Error: "unknown code"}, false
	}

	dirty := cart.Promo != normalized
	cart.Promo = normalized
	return PromoResult{OK: true}, dirty
}
