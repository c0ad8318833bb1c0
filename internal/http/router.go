package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
)

var limiter *rl.Limiter

// SetRateLimiter installs the per-IP limiter applied to every route. Leaving
// it unset (as the tests do) disables rate limiting.
func SetRateLimiter(l *rl.Limiter) {
	limiter = l
}

func NewRouter() http.Handler {
	r := chi.NewRouter()
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Get("/catalog", handlers.GetCatalogHandler)
	r.Get("/catalog/{id}", handlers.GetProductByIDHandler)
	r.Get("/view", handlers.GetViewHandler)

	r.Put("/filters", handlers.UpdateFiltersHandler)
	r.Delete("/filters", handlers.ResetFiltersHandler)

	r.Get("/cart", handlers.GetCartHandler)
	r.Post("/cart/items", handlers.AddCartItemHandler)
	r.Patch("/cart/items/{id}", handlers.ChangeQtyHandler)
	r.Delete("/cart", handlers.ClearCartHandler)
	r.Post("/cart/promo", handlers.ApplyPromoHandler)

	r.Post("/checkout", handlers.CheckoutHandler)
	r.Get("/orders", handlers.GetOrdersHandler)

	r.Post("/auth/login", handlers.LoginHandler)
	r.Group(func(g chi.Router) {
		g.Use(AdminMiddleware)
		g.Get("/admin/orders", handlers.GetAllOrdersHandler)
	})

	return r
}
