package models

// Product represents a single catalog entry. Products are created once at
// catalog load and never mutated afterwards.
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Price    float64  `json:"price"`
	Rating   float64  `json:"rating"`
	Desc     string   `json:"desc,omitempty"`
}
