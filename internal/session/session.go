// Package session holds per-conversation transcript state in memory.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Snouball98/my-first-chatbot/internal/models"
)

var (
	ErrInvalidSessionID = errors.New("session id is required")
	ErrInvalidRole      = errors.New("turn role is required")
	ErrSessionNotFound  = errors.New("session not found")
)

// Session owns one conversation transcript. Every read and write goes
// through its methods; nothing else holds a reference to the turn slice.
type Session struct {
	id        string
	mu        sync.RWMutex
	turns     []models.Turn
	createdAt time.Time
	updatedAt time.Time
	now       func() time.Time

	// turnMu serializes whole chat turns so two concurrent requests on the
	// same session cannot interleave their user/assistant appends. It is
	// separate from mu so transcript reads stay cheap while a model call
	// is in flight.
	turnMu sync.Mutex
}

// New constructs a Session with the provided identifier.
func New(id string) (*Session, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, ErrInvalidSessionID
	}
	now := time.Now
	return &Session{
		id:        trimmed,
		turns:     make([]models.Turn, 0, 16),
		createdAt: now().UTC(),
		updatedAt: now().UTC(),
		now:       now,
	}, nil
}

// ID returns the stable identifier for the session.
func (s *Session) ID() string {
	return s.id
}

// Append adds a turn to the transcript. Turns with an empty role are
// rejected and the transcript stays unchanged.
func (s *Session) Append(turn models.Turn) error {
	if strings.TrimSpace(turn.Role) == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidRole, turn.Role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
	s.updatedAt = s.now().UTC()
	return nil
}

// History returns a snapshot copy of the transcript in append order.
func (s *Session) History() []models.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.turns) == 0 {
		return nil
	}
	out := make([]models.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns in the transcript.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Reset clears the transcript. The session itself stays usable.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = s.turns[:0]
	s.updatedAt = s.now().UTC()
}

// CreatedAt returns the session creation time.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the time of the last append or reset.
func (s *Session) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// LockTurn acquires the per-session turn lock. Callers must pair it with
// UnlockTurn around one whole user turn.
func (s *Session) LockTurn() {
	s.turnMu.Lock()
}

// UnlockTurn releases the per-session turn lock.
func (s *Session) UnlockTurn() {
	s.turnMu.Unlock()
}
