package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/storefront/internal/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestHydrate_NilSavedKeepsDefaults(t *testing.T) {
	state := Hydrate(models.NewAppState(), nil)

	assert.Equal(t, models.DefaultFilters(), state.Filters)
	assert.Empty(t, state.Cart.Items)
	assert.Empty(t, state.Orders)
}

func TestHydrate_MaxPriceReclamped(t *testing.T) {
	tests := []struct {
		name  string
		saved float64
		want  float64
	}{
		{name: "way above ceiling", saved: 9999, want: 200},
		{name: "negative", saved: -5, want: 0},
		{name: "in range", saved: 120, want: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Hydrate(models.NewAppState(), &PersistedState{
				Filters: &PersistedFilters{MaxPrice: floatPtr(tt.saved)},
			})
			assert.Equal(t, tt.want, state.Filters.MaxPrice)
		})
	}
}

func TestHydrate_FiltersMergePerField(t *testing.T) {
	state := Hydrate(models.NewAppState(), &PersistedState{
		Filters: &PersistedFilters{Q: strPtr("headphones")},
	})

	assert.Equal(t, "headphones", state.Filters.Q)
	assert.Equal(t, models.CategoryAll, state.Filters.Category)
	assert.Equal(t, models.SortPopular, state.Filters.Sort)
	assert.Equal(t, models.MaxPriceCeiling, state.Filters.MaxPrice)
}

func TestHydrate_InvalidSortFallsBackToDefault(t *testing.T) {
	state := Hydrate(models.NewAppState(), &PersistedState{
		Filters: &PersistedFilters{Sort: strPtr("cheapest-first")},
	})

	assert.Equal(t, models.SortPopular, state.Filters.Sort)
}

func TestHydrate_CartNormalized(t *testing.T) {
	state := Hydrate(models.NewAppState(), &PersistedState{
		Cart: &models.Cart{
			Items: []models.CartItem{
				{ID: "p1", Qty: 2},
				{ID: "", Qty: 1},
				{ID: "p2", Qty: 0},
				{ID: "p3", Qty: -4},
				{ID: "p1", Qty: 7},
			},
			Promo: " sale10 ",
		},
	})

	assert.Equal(t, []models.CartItem{{ID: "p1", Qty: 2}}, state.Cart.Items)
	assert.Equal(t, "SALE10", state.Cart.Promo)
}

func TestHydrate_OrdersReplaceWholesale(t *testing.T) {
	saved := &PersistedState{
		Orders: []models.Order{
			{ID: 1700000000000, CreatedAt: 1700000000000, Total: 99},
		},
	}

	state := Hydrate(models.NewAppState(), saved)

	require.Len(t, state.Orders, 1)
	assert.Equal(t, 99.0, state.Orders[0].Total)
}
