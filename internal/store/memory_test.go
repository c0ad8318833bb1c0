package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/storefront/internal/models"
)

func TestInMemoryStateStore_RoundTrip(t *testing.T) {
	s := NewInMemoryStateStore()
	ctx := context.Background()

	state := models.NewAppState()
	state.Filters.Q = "speaker"
	state.Cart.Items = []models.CartItem{{ID: "p2", Qty: 3}}
	state.Cart.Promo = "HALF"
	state.Orders = []models.Order{{ID: 42, CreatedAt: 42, Total: 10}}

	require.NoError(t, s.Save(ctx, "sid-1", state))

	saved, err := s.Load(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, saved)

	hydrated := Hydrate(models.NewAppState(), saved)
	assert.Equal(t, state, hydrated)
}

func TestInMemoryStateStore_MissingKeyIsNotAnError(t *testing.T) {
	s := NewInMemoryStateStore()

	saved, err := s.Load(context.Background(), "never-seen")

	assert.NoError(t, err)
	assert.Nil(t, saved)
}

func TestInMemoryStateStore_CorruptBlobReadsAsNoState(t *testing.T) {
	s := NewInMemoryStateStore()
	s.Put("sid-1", "{not json")

	saved, err := s.Load(context.Background(), "sid-1")

	assert.NoError(t, err)
	assert.Nil(t, saved)

	// Hydrating the nil result falls back to defaults.
	state := Hydrate(models.NewAppState(), saved)
	assert.Equal(t, models.NewAppState(), state)
}

func TestInMemoryStateStore_SessionsAreIsolated(t *testing.T) {
	s := NewInMemoryStateStore()
	ctx := context.Background()

	a := models.NewAppState()
	a.Cart.Items = []models.CartItem{{ID: "p1", Qty: 1}}
	require.NoError(t, s.Save(ctx, "a", a))

	saved, err := s.Load(ctx, "b")
	assert.NoError(t, err)
	assert.Nil(t, saved)
}
