package models

const (
	SortPopular    = "popular"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// MaxPrice is always kept within [MinPriceCeiling, MaxPriceCeiling],
// whatever the source of the value.
const (
	MinPriceCeiling float64 = 0
	MaxPriceCeiling float64 = 200
)

type Filters struct {
	Q        string  `json:"q"`
	Category string  `json:"category"`
	Sort     string  `json:"sort"`
	MaxPrice float64 `json:"max_price"`
}

func DefaultFilters() Filters {
	return Filters{
		Q:        "",
		Category: CategoryAll,
		Sort:     SortPopular,
		MaxPrice: MaxPriceCeiling,
	}
}

func ValidSort(s string) bool {
	switch s {
	case SortPopular, SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return true
	}
	return false
}
