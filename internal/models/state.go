package models

// AppState is the full engine state for one session: current filters, the
// cart, and the order history. It is owned by exactly one session and always
// passed explicitly; there is no package-level instance.
type AppState struct {
	Filters Filters `json:"filters"`
	Cart    Cart    `json:"cart"`
	Orders  []Order `json:"orders"`
}

// NewAppState returns the default state a fresh session starts from before
// hydration.
func NewAppState() *AppState {
	return &AppState{
		Filters: DefaultFilters(),
		Cart:    Cart{Items: []CartItem{}},
		Orders:  []Order{},
	}
}
