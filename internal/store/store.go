package store

import (
	"context"
	"encoding/json"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// PersistedState is the loosely-typed shape read back from storage. Every
// top-level field is optional; Hydrate validates and normalizes each one
// independently instead of trusting the blob.
type PersistedState struct {
	Filters *PersistedFilters `json:"filters"`
	Cart    *models.Cart      `json:"cart"`
	Orders  []models.Order    `json:"orders"`
}

// PersistedFilters keeps every field optional so a partial blob still merges
// per field over the defaults.
type PersistedFilters struct {
	Q        *string  `json:"q"`
	Category *string  `json:"category"`
	Sort     *string  `json:"sort"`
	MaxPrice *float64 `json:"max_price"`
}

// StateStore is the persistence backend boundary: one serialized AppState
// per session key. Load returns nil for a missing or unparseable state,
// since absence is not an error; a backend error is only for logging, and
// callers fall back to defaults either way. Save is best-effort: callers
// log failures and move on.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (*PersistedState, error)
	Save(ctx context.Context, sessionID string, state *models.AppState) error
}

// decodeState parses a stored blob, returning nil when it is not valid
// JSON of the expected shape.
func decodeState(data []byte) *PersistedState {
	var ps PersistedState
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil
	}
	return &ps
}

func encodeState(state *models.AppState) ([]byte, error) {
	return json.Marshal(state)
}
