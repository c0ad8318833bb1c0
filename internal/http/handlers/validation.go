package handlers

import "github.com/rogerio-castellano/storefront/internal/models"

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateFilters rejects filter values the UI could never produce: an
// unknown sort key or a category that is neither "all" nor present in the
// catalog. MaxPrice is clamped rather than rejected, matching the range
// input it comes from.
func validateFilters(req FiltersRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if req.Sort != nil && !models.ValidSort(*req.Sort) {
		errs = append(errs, ProductValidationError{Field: "sort", Description: "unknown sort"})
	}
	if req.Category != nil && *req.Category != models.CategoryAll && !cat.HasCategory(*req.Category) {
		errs = append(errs, ProductValidationError{Field: "category", Description: "unknown category"})
	}
	return errs
}
