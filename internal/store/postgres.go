package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// PostgresStateStore keeps one row per session in the storefront_state
// table.
type PostgresStateStore struct {
	db *sql.DB
}

func NewPostgresStateStore(db *sql.DB) *PostgresStateStore {
	return &PostgresStateStore{db: db}
}

// EnsureSchema creates the state table if it does not exist yet.
func (s *PostgresStateStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS storefront_state (
			session_id TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create state table: %w", err)
	}
	return nil
}

func (s *PostgresStateStore) Load(ctx context.Context, sessionID string) (*PersistedState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM storefront_state WHERE session_id = $1`, sessionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	return decodeState([]byte(payload)), nil
}

func (s *PostgresStateStore) Save(ctx context.Context, sessionID string, state *models.AppState) error {
	data, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO storefront_state (session_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		sessionID, string(data))
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
