package session

import (
	"sync"

	"telegram-deadline-bot/internal/models"
)

type key struct {
	UserID int64
	ChatID int64
}

// Session is the transient conversation context for one user in one chat:
// the current state tag plus the draft being filled in.
type Session struct {
	State models.State
	Draft models.Draft
}

// Manager owns every in-flight conversation, keyed by (user, chat).
// Entries are inserted when a flow starts and removed on every terminal
// transition, so the map does not grow without bound.
type Manager struct {
	mu       sync.RWMutex
	sessions map[key]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[key]*Session)}
}

// Get returns a copy of the session for the pair. An idle zero session is
// returned when no conversation is in flight.
func (m *Manager) Get(userID, chatID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[key{userID, chatID}]; ok {
		return *s
	}
	return Session{}
}

// State returns the current conversation state for the pair.
func (m *Manager) State(userID, chatID int64) models.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[key{userID, chatID}]; ok {
		return s.State
	}
	return models.StateNone
}

// SetState moves the conversation to st, keeping the draft.
func (m *Manager) SetState(userID, chatID int64, st models.State) {
	m.Update(userID, chatID, func(s *Session) { s.State = st })
}

// Update applies fn to the session under the lock, creating the session
// if the pair has none yet.
func (m *Manager) Update(userID, chatID int64, fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key{userID, chatID}
	s, ok := m.sessions[k]
	if !ok {
		s = &Session{}
		m.sessions[k] = s
	}
	fn(s)
}

// Clear ends the conversation and drops the draft.
func (m *Manager) Clear(userID, chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key{userID, chatID})
}
