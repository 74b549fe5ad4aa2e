package repository

import (
	"context"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/domain"
)

// MemorySessionStore is the in-process store used when Redis is not configured.
// Expired entries are dropped lazily on access.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	states   map[string]time.Time
	now      func() time.Time
}

func NewMemorySessionStore(now func() time.Time) *MemorySessionStore {
	if now == nil {
		now = time.Now
	}
	return &MemorySessionStore{
		sessions: make(map[string]domain.Session),
		states:   make(map[string]time.Time),
		now:      now,
	}
}

func (m *MemorySessionStore) Save(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = *s
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !m.now().Before(s.ExpiresAt) {
		delete(m.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

func (m *MemorySessionStore) SaveState(_ context.Context, state string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[state] = m.now().Add(ttl)
	return nil
}

func (m *MemorySessionStore) ConsumeState(_ context.Context, state string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	expires, ok := m.states[state]
	delete(m.states, state)
	if !ok || !m.now().Before(expires) {
		return domain.ErrInvalidState
	}
	return nil
}
