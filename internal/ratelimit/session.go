package ratelimit

import (
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

// Session tracks one user's rate-limit state. ViolationHistory is append-only
// and survives timeout resets for audit purposes.
type Session struct {
	UserID           string
	SessionStart     time.Time
	MessageCount     int
	LastMessageTime  time.Time
	WarningCount     int
	ViolationHistory []models.Violation
}

// SessionStore provides serialized read-modify-write access to per-user
// sessions. Two concurrent requests for the same user must observe a
// linearizable sequence of updates.
type SessionStore interface {
	// Mutate runs fn with exclusive access to the user's session. If the
	// session does not exist it is created with init; when init is nil and
	// the session is absent, fn is not called.
	Mutate(userID string, init func() *Session, fn func(s *Session))
	// Snapshot returns a copy of the user's session, if any.
	Snapshot(userID string) (Session, bool)
}

// MemoryStore is the default in-process SessionStore. A single mutex guards
// the map; contention is low because each request touches one key briefly.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Mutate(userID string, init func() *Session, fn func(s *Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		if init == nil {
			return
		}
		s = init()
		m.sessions[userID] = s
	}
	fn(s)
}

func (m *MemoryStore) Snapshot(userID string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return Session{}, false
	}

	copied := *s
	copied.ViolationHistory = make([]models.Violation, len(s.ViolationHistory))
	copy(copied.ViolationHistory, s.ViolationHistory)
	return copied, true
}
