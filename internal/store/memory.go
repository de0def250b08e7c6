// internal/store/memory.go
//
// In-memory session store.
// Sessions live only as long as the process; there is no durability.
//
// Characteristics:
//   - Sessions are keyed by a random UUID.
//   - The map is guarded by an RWMutex; each session additionally has its own
//     mutex so that Update runs one function at a time per session.
//   - Sessions idle for longer than the TTL are dropped by Sweep.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Create makes a new session with no active round and returns its ID.
	Create(ctx context.Context, v game.Validator) (string, error)

	// Snapshot returns a read-only copy of a session.
	Snapshot(ctx context.Context, id string) (game.Snapshot, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error
}

type entry struct {
	mu       sync.Mutex
	session  *game.Session
	lastSeen time.Time
}

// Memory is a map-based Store.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *Memory {
	return &Memory{sessions: make(map[string]*entry), now: time.Now}
}

func (m *Memory) Create(ctx context.Context, v game.Validator) (string, error) {
	s := game.New(uuid.NewString(), v)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &entry{session: s, lastSeen: m.now()}
	return s.ID, nil
}

func (m *Memory) get(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Snapshot(ctx context.Context, id string) (game.Snapshot, error) {
	e, err := m.get(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Snapshot(), nil
}

func (m *Memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = m.now()
	return fn(e.session)
}

// Sweep drops sessions not updated within ttl and returns how many were removed.
func (m *Memory) Sweep(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		stale := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
