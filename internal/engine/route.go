package engine

import "strings"

// The three views a collaborator can render.
const (
	RouteCatalog = "catalog"
	RouteProduct = "product"
	RouteOrders  = "orders"
)

type Route struct {
	Name      string `json:"name"`
	ProductID string `json:"product_id,omitempty"`
}

// ParseRoute maps a URL fragment ("#/", "#/product/p1", "#/orders") to a
// route. Empty input and anything unrecognized fall back to the catalog.
func ParseRoute(fragment string) Route {
	trimmed := strings.TrimPrefix(fragment, "#")
	trimmed = strings.TrimPrefix(trimmed, "/")

	var parts []string
	for _, part := range strings.Split(trimmed, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return Route{Name: RouteCatalog}
	}
	if parts[0] == "product" && len(parts) > 1 {
		return Route{Name: RouteProduct, ProductID: parts[1]}
	}
	if parts[0] == "orders" {
		return Route{Name: RouteOrders}
	}
	return Route{Name: RouteCatalog}
}
