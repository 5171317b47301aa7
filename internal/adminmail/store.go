package adminmail

import "sync"

// PendingStore holds the per-session pending flows. It is owned by the
// composition root and injected, so there is no package-level session state;
// the mutex makes the per-key read-modify-write safe under concurrent turns.
type PendingStore struct {
	mu    sync.RWMutex
	flows map[string]pendingFlow
}

// NewPendingStore creates an empty store.
func NewPendingStore() *PendingStore {
	return &PendingStore{flows: make(map[string]pendingFlow)}
}

// Get returns the pending flow for the session key, if any.
func (s *PendingStore) Get(key string) (pendingFlow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flows[key]
	return f, ok
}

// Set records the pending flow for the session key, replacing any previous
// flow wholesale.
func (s *PendingStore) Set(key string, f pendingFlow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[key] = f
}

// Delete clears the pending flow and reports whether one existed.
func (s *PendingStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.flows[key]
	delete(s.flows, key)
	return ok
}

// Has reports whether the session key has a pending flow.
func (s *PendingStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.flows[key]
	return ok
}
