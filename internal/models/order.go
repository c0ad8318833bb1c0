package models

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order snapshots a completed checkout. Orders are append-only: once created
// they are never mutated or deleted.
type Order struct {
	ID        int64    `json:"id"`
	CreatedAt int64    `json:"created_at"`
	Customer  Customer `json:"customer"`
	Total     float64  `json:"total"`
}
