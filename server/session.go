package server

import (
	"sync"

	"github.com/bububa/linkedin-agents/components"
)

// SessionStore keeps per-session chat memory.
// threadsafe
type SessionStore struct {
	mtx         sync.RWMutex
	sessions    map[string]*components.Memory
	maxMessages int
}

// NewSessionStore initializes a SessionStore. maxMessages caps each
// session history, zero keeps everything.
func NewSessionStore(maxMessages int) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*components.Memory),
		maxMessages: maxMessages,
	}
}

// Get returns the memory for a session, creating it on first use.
func (s *SessionStore) Get(sessionID string) *components.Memory {
	s.mtx.RLock()
	m, ok := s.sessions[sessionID]
	s.mtx.RUnlock()
	if ok {
		return m
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if m, ok := s.sessions[sessionID]; ok {
		return m
	}
	m = components.NewMemory(s.maxMessages)
	s.sessions[sessionID] = m
	return m
}

// Delete removes a session
func (s *SessionStore) Delete(sessionID string) {
	s.mtx.Lock()
	delete(s.sessions, sessionID)
	s.mtx.Unlock()
}

// Count returns the number of live sessions
func (s *SessionStore) Count() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.sessions)
}
