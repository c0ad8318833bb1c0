package models

// CartItem references a catalog product by id. Qty is always >= 1; an item
// whose quantity would drop to zero is removed from the cart instead.
type CartItem struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// Cart is the user's in-progress selection plus an optional promo code.
// The promo code is stored uppercase; the empty string means no promo.
type Cart struct {
	Items []CartItem `json:"items"`
	Promo string     `json:"promo,omitempty"`
}

// Count returns the total number of units across all items.
func (c *Cart) Count() int {
	count := 0
	for _, it := range c.Items {
		count += it.Qty
	}
	return count
}
