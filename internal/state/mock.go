// internal/state/mock.go
package state

import (
	"context"
	"sort"
	"sync"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	mu       sync.Mutex
	sessions map[string]Session
	saves    int
	saveErr  error
	getErr   error
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{sessions: make(map[string]Session)}
}

func (m *Mock) SaveSession(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	s.Tracks = append([]SessionTrack(nil), s.Tracks...)
	s.CurrentTime = s.Position.Seconds()
	m.sessions[s.UserKey] = s
	return nil
}

func (m *Mock) GetSession(_ context.Context, key string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.sessions[key]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &s, nil
}

func (m *Mock) DeleteSession(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
	return nil
}

func (m *Mock) ListSessions(_ context.Context) ([]SessionSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SessionSummary, 0, len(m.sessions))
	for k, s := range m.sessions {
		out = append(out, SessionSummary{UserKey: k, TrackCount: len(s.Tracks), SavedAt: s.SavedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserKey < out[j].UserKey })
	return out, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// SaveCount returns how many times SaveSession was called.
func (m *Mock) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *Mock) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
