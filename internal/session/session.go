package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/storefront/internal/engine"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/store"
)

// Session owns one AppState. All access goes through Update and View, which
// hold the session lock, so engine calls for a session never overlap.
type Session struct {
	ID    string
	mu    sync.Mutex
	state *models.AppState
	save  *engine.Debouncer
}

// Update runs fn against the session state under the lock. fn reports
// whether it mutated state; the result is forwarded so the caller knows to
// persist.
func (s *Session) Update(fn func(*models.AppState) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// View runs fn against the session state under the lock, for read-only use.
func (s *Session) View(fn func(*models.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Manager creates and caches sessions, hydrating each one from the state
// store on first touch.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	store     store.StateStore
	saveDelay time.Duration
}

func NewManager(st store.StateStore, saveDelay time.Duration) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		store:     st,
		saveDelay: saveDelay,
	}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating and hydrating it on first use.
// Missing or corrupt persisted state degrades to defaults.
func (m *Manager) Get(ctx context.Context, id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	saved, err := m.store.Load(ctx, id)
	if err != nil {
		log.Printf("state load failed for session %s: %v", id, err)
	}

	s := &Session{
		ID:    id,
		state: store.Hydrate(models.NewAppState(), saved),
		save:  engine.NewDebouncer(m.saveDelay),
	}
	m.sessions[id] = s
	return s
}

// All returns the currently cached sessions.
func (m *Manager) All() []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

// Persist writes the session state now. Failures are logged, never surfaced
// to the user.
func (m *Manager) Persist(ctx context.Context, s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := m.store.Save(ctx, s.ID, s.state); err != nil {
		log.Printf("state save failed for session %s: %v", s.ID, err)
	}
}

// PersistDebounced schedules a persist after the quiescence window,
// replacing any pending one. Used for rapid-fire search input so each
// keystroke does not hit the backend.
func (m *Manager) PersistDebounced(s *Session) {
	s.save.Trigger(func() {
		m.Persist(context.Background(), s)
	})
}
