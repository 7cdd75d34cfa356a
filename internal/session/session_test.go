package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// ==========================
// Session
// ==========================

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		expectErr error
		expectID  string
	}{
		{name: "plain id", id: "abc-123", expectID: "abc-123"},
		{name: "id is trimmed", id: "  abc-123  ", expectID: "abc-123"},
		{name: "empty id rejected", id: "", expectErr: ErrInvalidSessionID},
		{name: "blank id rejected", id: "   ", expectErr: ErrInvalidSessionID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.id)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectID, s.ID())
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestSession_Append(t *testing.T) {
	s, err := New("s1")
	require.NoError(t, err)

	require.NoError(t, s.Append(models.UserTurn("손흥민 잘해?")))
	require.NoError(t, s.Append(models.AssistantTurn("네, 아주 잘합니다.")))

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "손흥민 잘해?", history[0].Content)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
}

func TestSession_Append_EmptyRoleRejected(t *testing.T) {
	s, err := New("s1")
	require.NoError(t, err)
	require.NoError(t, s.Append(models.UserTurn("hello")))

	err = s.Append(models.Turn{Role: "  ", Content: "ghost"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	// Transcript must be unchanged after the rejected append.
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "hello", s.History()[0].Content)
}

func TestSession_History_SnapshotIsolation(t *testing.T) {
	s, err := New("s1")
	require.NoError(t, err)
	require.NoError(t, s.Append(models.UserTurn("first")))

	snapshot := s.History()
	snapshot[0].Content = "mutated"
	require.NoError(t, s.Append(models.UserTurn("second")))

	fresh := s.History()
	assert.Equal(t, "first", fresh[0].Content, "mutating a snapshot must not touch the transcript")
	assert.Len(t, fresh, 2)
	assert.Len(t, snapshot, 1)
}

func TestSession_Reset(t *testing.T) {
	s, err := New("s1")
	require.NoError(t, err)
	require.NoError(t, s.Append(models.UserTurn("hello")))
	require.NoError(t, s.Append(models.AssistantTurn("hi")))

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.History())

	// The session stays usable after a reset.
	require.NoError(t, s.Append(models.UserTurn("again")))
	assert.Equal(t, 1, s.Len())
}

func TestSession_ConcurrentAppends(t *testing.T) {
	s, err := New("s1")
	require.NoError(t, err)

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = s.Append(models.UserTurn(fmt.Sprintf("w%d-%d", w, i)))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, s.Len())
	for _, turn := range s.History() {
		assert.Equal(t, models.RoleUser, turn.Role)
		assert.NotEmpty(t, turn.Content)
	}
}

// ==========================
// Manager
// ==========================

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager()

	s1 := m.GetOrCreate("known")
	s2 := m.GetOrCreate("known")
	assert.Same(t, s1, s2, "same id must return the same session instance")
	assert.Equal(t, 1, m.Count())

	fresh := m.GetOrCreate("")
	assert.NotEmpty(t, fresh.ID(), "empty id must be replaced with a generated one")
	assert.NotEqual(t, "known", fresh.ID())
	assert.Equal(t, 2, m.Count())
}

func TestManager_Get(t *testing.T) {
	m := NewManager()
	created := m.GetOrCreate("known")

	got, err := m.Get("known")
	require.NoError(t, err)
	assert.Same(t, created, got)

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Remove(t *testing.T) {
	m := NewManager()
	m.GetOrCreate("known")
	require.Equal(t, 1, m.Count())

	m.Remove("known")
	assert.Equal(t, 0, m.Count())

	_, err := m.Get("known")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Sweep(t *testing.T) {
	m := NewManager()

	idle := m.GetOrCreate("idle")
	idle.mu.Lock()
	idle.updatedAt = time.Now().UTC().Add(-time.Hour)
	idle.mu.Unlock()

	active := m.GetOrCreate("active")
	require.NoError(t, active.Append(models.UserTurn("ping")))

	removed := m.Sweep(30 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, m.Count())

	_, err := m.Get("idle")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get("active")
	assert.NoError(t, err)
}

func TestManager_Sweep_Disabled(t *testing.T) {
	m := NewManager()
	m.GetOrCreate("one")

	assert.Equal(t, 0, m.Sweep(0))
	assert.Equal(t, 1, m.Count())
}
