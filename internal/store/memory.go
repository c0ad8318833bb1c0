package store

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// InMemoryStateStore is an in-memory implementation of StateStore. It keeps
// serialized blobs rather than live structs, mirroring the key-value string
// semantics of the real backends so hydration sees exactly what a round-trip
// would produce.
type InMemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]string
}

// NewInMemoryStateStore creates a new instance of InMemoryStateStore.
func NewInMemoryStateStore() *InMemoryStateStore {
	return &InMemoryStateStore{states: make(map[string]string)}
}

func (s *InMemoryStateStore) Load(ctx context.Context, sessionID string) (*PersistedState, error) {
	s.mu.RLock()
	raw, ok := s.states[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeState([]byte(raw)), nil
}

func (s *InMemoryStateStore) Save(ctx context.Context, sessionID string, state *models.AppState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.states[sessionID] = string(data)
	s.mu.Unlock()
	return nil
}

// Put stores a raw blob, valid or not. Used by tests to exercise the
// corrupt-state path.
func (s *InMemoryStateStore) Put(sessionID, raw string) {
	s.mu.Lock()
	s.states[sessionID] = raw
	s.mu.Unlock()
}

func (s *InMemoryStateStore) Clear() {
	s.mu.Lock()
	s.states = make(map[string]string)
	s.mu.Unlock()
}
