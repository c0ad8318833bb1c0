package handlers

import "github.com/rogerio-castellano/storefront/internal/engine"

type ProductResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Price      float64  `json:"price"`
	PriceLabel string   `json:"price_label"`
	Rating     float64  `json:"rating"`
	Desc       string   `json:"desc,omitempty"`
}

type FiltersResponse struct {
	Q        string  `json:"q"`
	Category string  `json:"category"`
	Sort     string  `json:"sort"`
	MaxPrice float64 `json:"max_price"`
}

// FiltersRequest uses pointer fields so a caller can change one filter
// without restating the rest.
type FiltersRequest struct {
	Q        *string  `json:"q"`
	Category *string  `json:"category"`
	Sort     *string  `json:"sort"`
	MaxPrice *float64 `json:"max_price"`
}

type CatalogResponse struct {
	Products   []ProductResponse `json:"products"`
	Found      int               `json:"found"`
	Categories []string          `json:"categories"`
	Filters    FiltersResponse   `json:"filters"`
}

type CartItemResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"line_total,omitempty"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	Count         int                `json:"count"`
	Promo         string             `json:"promo,omitempty"`
	Sum           float64            `json:"sum"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	TotalLabel    string             `json:"total_label"`
	DiscountLabel string             `json:"discount_label"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type PromoRequest struct {
	Code string `json:"code"`
}

type PromoResponse struct {
	OK    bool         `json:"ok"`
	Error string       `json:"error,omitempty"`
	Cart  CartResponse `json:"cart"`
}

type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderResponse struct {
	ID         int64            `json:"id"`
	CreatedAt  int64            `json:"created_at"`
	Customer   CustomerResponse `json:"customer"`
	Total      float64          `json:"total"`
	TotalLabel string           `json:"total_label"`
}

type CheckoutResult struct {
	Order OrderResponse `json:"order"`
	Cart  CartResponse  `json:"cart"`
}

// ViewResponse is the render payload for one parsed route; exactly one of
// the three view fields is set.
type ViewResponse struct {
	Route   engine.Route     `json:"route"`
	Catalog *CatalogResponse `json:"catalog,omitempty"`
	Product *ProductResponse `json:"product,omitempty"`
	Orders  []OrderResponse  `json:"orders,omitempty"`
}

type SessionOrders struct {
	SessionID string          `json:"session_id"`
	Orders    []OrderResponse `json:"orders"`
}

type CredentialsRequest struct {
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}
