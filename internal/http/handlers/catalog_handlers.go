package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/storefront/internal/engine"
	"github.com/rogerio-castellano/storefront/internal/models"
)

func productResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Title:      p.Title,
		Category:   p.Category,
		Tags:       p.Tags,
		Price:      p.Price,
		PriceLabel: money(p.Price),
		Rating:     p.Rating,
		Desc:       p.Desc,
	}
}

func catalogResponse(filters models.Filters) CatalogResponse {
	filtered := engine.ApplyFilters(cat, filters)
	products := make([]ProductResponse, len(filtered))
	for i, p := range filtered {
		products[i] = productResponse(p)
	}
	return CatalogResponse{
		Products:   products,
		Found:      len(filtered),
		Categories: cat.Categories(),
		Filters: FiltersResponse{
			Q:        filters.Q,
			Category: filters.Category,
			Sort:     filters.Sort,
			MaxPrice: filters.MaxPrice,
		},
	}
}

// GetCatalogHandler godoc
// @Summary Catalog view filtered and sorted per the session's filters
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)

	var resp CatalogResponse
	s.View(func(state *models.AppState) {
		resp = catalogResponse(state.Filters)
	})
	writeJSON(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get a single product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Router /catalog/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := cat.ByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, productResponse(p))
}

// GetViewHandler godoc
// @Summary Render payload for a URL fragment route
// @Tags catalog
// @Produce json
// @Param fragment query string false "URL fragment, e.g. #/product/p1"
// @Success 200 {object} ViewResponse
// @Router /view [get]
func GetViewHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	route := engine.ParseRoute(r.URL.Query().Get("fragment"))

	resp := ViewResponse{Route: route}
	switch route.Name {
	case engine.RouteProduct:
		p, ok := cat.ByID(route.ProductID)
		if !ok {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		pr := productResponse(p)
		resp.Product = &pr
	case engine.RouteOrders:
		s.View(func(state *models.AppState) {
			resp.Orders = orderResponses(state.Orders)
		})
	default:
		s.View(func(state *models.AppState) {
			cr := catalogResponse(state.Filters)
			resp.Catalog = &cr
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
