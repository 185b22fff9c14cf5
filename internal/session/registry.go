package session

import "sync"

// Registry maps chat IDs to sessions. Insertion-if-absent is safe to call
// from concurrent update handlers.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// Ensure returns the user's session, creating a zeroed one on first
// contact. Idempotent.
func (r *Registry) Ensure(chatID int64) *Session {
	r.mu.RLock()
	s, ok := r.sessions[chatID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok = r.sessions[chatID]; ok {
		return s
	}
	s = newSession(chatID)
	r.sessions[chatID] = s
	return s
}

// Lookup returns an existing session or ErrUninitialized.
func (r *Registry) Lookup(chatID int64) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[chatID]
	if !ok {
		return nil, ErrUninitialized
	}
	return s, nil
}

// Range calls fn for every known session. Used by the reminder job.
func (r *Registry) Range(fn func(*Session)) {
	r.mu.RLock()
	snapshot := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		snapshot = append(snapshot, s)
	}
	r.mu.RUnlock()

	for _, s := range snapshot {
		fn(s)
	}
}

// Len reports the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
