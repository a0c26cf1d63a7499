package adapters

import (
	"sync"
	"time"

	"cargo-portal/internal/features/wizard/domain"
)

// MemoryStore keeps wizards in process memory. Entries idle longer than the
// sweep TTL are dropped.
type MemoryStore struct {
	mu      sync.Mutex
	wizards map[string]*domain.Wizard
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{wizards: make(map[string]*domain.Wizard)}
}

// Save adds or replaces w.
func (s *MemoryStore) Save(w *domain.Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[w.ID()] = w
}

// Get returns the wizard if it belongs to sessionID.
func (s *MemoryStore) Get(sessionID, id string) (*domain.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[id]
	if !ok || w.SessionID() != sessionID {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

// Delete removes a wizard. Missing ids are ignored.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, id)
}

// CloseSession drops every wizard of a signed-out session.
func (s *MemoryStore) CloseSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, w := range s.wizards {
		if w.SessionID() == sessionID {
			delete(s.wizards, id)
		}
	}
}

// Sweep drops wizards untouched for longer than ttl and returns how many.
func (s *MemoryStore) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, w := range s.wizards {
		if w.Touched().Before(cutoff) {
			delete(s.wizards, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored wizards.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wizards)
}
