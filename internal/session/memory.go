package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

// MemoryStore keeps sessions in a process-local map. Suitable for
// single-instance deployments; sessions do not survive a restart.
// Expired entries are dropped lazily on Lookup.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	now      func() time.Time // overridable for tests
}

// NewMemoryStore returns an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context, id Identity) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.sessions[token] = memoryEntry{identity: id, expiresAt: m.now().Add(TTL)}
	m.mu.Unlock()
	return token, nil
}

func (m *MemoryStore) Lookup(_ context.Context, token string) (Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[token]
	if !ok {
		return Identity{}, ErrNoSession
	}
	if m.now().After(e.expiresAt) {
		delete(m.sessions, token)
		return Identity{}, ErrNoSession
	}
	return e.identity, nil
}

func (m *MemoryStore) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}
