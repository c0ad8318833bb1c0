package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// UpdateFiltersHandler godoc
// @Summary Update the session's catalog filters
// @Description Only the fields present in the body change. Query-only
// @Description updates persist on a debounce window to absorb fast typing.
// @Tags catalog
// @Accept json
// @Produce json
// @Param filters body FiltersRequest true "Filter changes"
// @Success 200 {object} CatalogResponse
// @Failure 400 {object} []ProductValidationError
// @Router /filters [put]
func UpdateFiltersHandler(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateFilters(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	s := currentSession(w, r)

	queryOnly := req.Q != nil && req.Category == nil && req.Sort == nil && req.MaxPrice == nil
	var resp CatalogResponse
	dirty := s.Update(func(state *models.AppState) bool {
		changed := false
		if req.Q != nil && state.Filters.Q != *req.Q {
			state.Filters.Q = *req.Q
			changed = true
		}
		if req.Category != nil && state.Filters.Category != *req.Category {
			state.Filters.Category = *req.Category
			changed = true
		}
		if req.Sort != nil && state.Filters.Sort != *req.Sort {
			state.Filters.Sort = *req.Sort
			changed = true
		}
		if req.MaxPrice != nil {
			clamped := *req.MaxPrice
			if clamped < models.MinPriceCeiling {
				clamped = models.MinPriceCeiling
			}
			if clamped > models.MaxPriceCeiling {
				clamped = models.MaxPriceCeiling
			}
			if state.Filters.MaxPrice != clamped {
				state.Filters.MaxPrice = clamped
				changed = true
			}
		}
		resp = catalogResponse(state.Filters)
		return changed
	})

	if dirty {
		if queryOnly {
			sessions.PersistDebounced(s)
		} else {
			sessions.Persist(r.Context(), s)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ResetFiltersHandler godoc
// @Summary Reset the session's filters to defaults
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /filters [delete]
func ResetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)

	var resp CatalogResponse
	dirty := s.Update(func(state *models.AppState) bool {
		changed := state.Filters != models.DefaultFilters()
		state.Filters = models.DefaultFilters()
		resp = catalogResponse(state.Filters)
		return changed
	})

	if dirty {
		sessions.Persist(r.Context(), s)
	}
	writeJSON(w, http.StatusOK, resp)
}
