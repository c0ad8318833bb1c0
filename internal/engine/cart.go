package engine

import "github.com/rogerio-castellano/storefront/internal/models"

// Cart operations mutate the cart in place and return whether state changed,
// so the caller knows to persist and re-render. They never trigger
// persistence themselves.

// AddToCart increments the quantity for productID, appending a new item with
// quantity 1 on first add. The id is not checked against the catalog;
// pricing skips unresolved ids.
func AddToCart(cart *models.Cart, productID string) bool {
	for i := range cart.Items {
		if cart.Items[i].ID == productID {
			cart.Items[i].Qty++
			return true
		}
	}
	cart.Items = append(cart.Items, models.CartItem{ID: productID, Qty: 1})
	return true
}

// ChangeQty adds delta to the quantity of productID. A missing item is a
// no-op. A resulting quantity of zero or below removes the item, keeping the
// order of the remaining items. A large negative delta works as a remove
// shortcut.
func ChangeQty(cart *models.Cart, productID string, delta int) bool {
	for i := range cart.Items {
		if cart.Items[i].ID != productID {
			continue
		}
		cart.Items[i].Qty += delta
		if cart.Items[i].Qty <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		}
		return true
	}
	return false
}

// ClearCart empties the items and forgets the promo in one step; clearing
// the cart always clears the promo with it.
func ClearCart(cart *models.Cart) bool {
	dirty := len(cart.Items) > 0 || cart.Promo != ""
	cart.Items = []models.CartItem{}
	cart.Promo = ""
	return dirty
}
