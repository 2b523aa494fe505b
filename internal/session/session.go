// Package session keeps the per-visitor "current document" in memory.
// Nothing is persisted; a process restart forgets every session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resumebuilder/internal/model"
)

// Session is the explicit context passed to each handler instead of global state.
// It is safe for concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	current  *model.GeneratedDocument
	profile  model.UserProfile
	lastSeen time.Time
}

// Current returns the document produced by the last generate action, if any.
func (s *Session) Current() (model.GeneratedDocument, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.GeneratedDocument{}, false
	}
	return *s.current, true
}

// SetCurrent replaces any previous document.
func (s *Session) SetCurrent(doc model.GeneratedDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &doc
}

// Clear drops the current document. The remembered profile is kept so the
// form stays filled in.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Profile returns the last submitted form values.
func (s *Session) Profile() model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile remembers the submitted form values.
func (s *Session) SetProfile(p model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Store maps session ids to sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Get returns an existing session and marks it as used.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.touch(st.now())
	}
	return s, ok
}

// GetOrCreate returns the session for id, creating one with a fresh id when
// id is empty or unknown. The returned bool is true for new sessions.
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}

	s := &Session{ID: uuid.NewString(), lastSeen: st.now()}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s, true
}

// Delete forgets a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle for longer than maxIdle and returns how many were removed.
func (st *Store) Sweep(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
