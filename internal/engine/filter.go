package engine

import (
	"sort"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/models"
)

// ApplyFilters derives the displayed product subset: price ceiling, category
// match, free-text query over title and tags, then sort. The catalog is
// never modified; filtering and sorting happen on a fresh slice. Sorts are
// stable so ties keep catalog order, and "popular" keeps catalog order
// outright.
func ApplyFilters(cat *catalog.Catalog, f models.Filters) []models.Product {
	res := make([]models.Product, 0, cat.Len())
	q := strings.ToLower(strings.TrimSpace(f.Q))

	for _, p := range cat.Products() {
		if p.Price > f.MaxPrice {
			continue
		}
		if f.Category != models.CategoryAll && p.Category != f.Category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		res = append(res, p)
	}

	switch f.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Price < res[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Price > res[j].Price })
	case models.SortRatingDesc:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Rating > res[j].Rating })
	}
	return res
}

func matchesQuery(p models.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(p.Tags, " ")), q)
}
