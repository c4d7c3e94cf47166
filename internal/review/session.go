package review

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"docreview/internal/domain"
)

// Session binds one editing session to its store. Each session owns an
// independent edited state; nothing is shared across sessions.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Store     *Store
}

// Manager tracks live review sessions by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*Session)}
}

// Create registers a new session over the batch and initializes its edited
// state.
func (m *Manager) Create(batch *domain.Batch) *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Store:     NewStore(batch),
	}
	s.Store.Initialize()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Reset discards a session and everything it holds. Resetting an unknown
// session is not a failure; reset always succeeds.
func (m *Manager) Reset(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
