package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Snouball98/my-first-chatbot/internal/common/metrics"
)

// Manager scopes sessions by identifier. All sessions live in process
// memory and disappear on restart.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating it when absent. An
// empty id gets a fresh UUID.
func (m *Manager) GetOrCreate(id string) *Session {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.New().String()
	}

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s, _ = New(id)
	m.sessions[id] = s
	metrics.SessionsActive.WithLabelValues("memory").Set(float64(len(m.sessions)))
	return s
}

// Get returns the session for id or ErrSessionNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove drops the session for id, if any.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	metrics.SessionsActive.WithLabelValues("memory").Set(float64(len(m.sessions)))
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than maxIdle and reports how many
// were dropped. A maxIdle of zero disables sweeping.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	cutoff := time.Now().UTC().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if s.UpdatedAt().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.SessionsActive.WithLabelValues("memory").Set(float64(len(m.sessions)))
	}
	return removed
}
