// Package likes tracks which songs the signed-in user has liked.
package likes

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/llehouerou/mymusic/internal/api"
)

// Backend is the part of the API client the set needs.
type Backend interface {
	Favorites(ctx context.Context) ([]api.Song, error)
	ToggleLike(ctx context.Context, id string) (string, error)
}

// Set is the local copy of the user's liked song ids. It is safe for
// concurrent use.
type Set struct {
	backend Backend

	mu  sync.RWMutex
	ids map[string]struct{}
}

// New returns an empty set backed by b.
func New(b Backend) *Set {
	return &Set{backend: b, ids: make(map[string]struct{})}
}

// Load replaces the set with the user's favorites.
func (s *Set) Load(ctx context.Context) error {
	songs, err := s.backend.Favorites(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	ids := lo.SliceToMap(songs, func(song api.Song) (string, struct{}) {
		return song.ID, struct{}{}
	})
	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()
	return nil
}

// Has reports whether id is liked.
func (s *Set) Has(id string) bool {
	if id == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Toggle flips the like state of id on the server. The local set only
// changes when the server accepts the request. It returns the new state
// and the server's message.
func (s *Set) Toggle(ctx context.Context, id string) (bool, string, error) {
	msg, err := s.backend.ToggleLike(ctx, id)
	if err != nil {
		return s.Has(id), "", fmt.Errorf("toggle like: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false, msg, nil
	}
	s.ids[id] = struct{}{}
	return true, msg, nil
}

// Clear forgets every like (logout).
func (s *Set) Clear() {
	s.mu.Lock()
	s.ids = make(map[string]struct{})
	s.mu.Unlock()
}

// IDs returns the liked ids in sorted order.
func (s *Set) IDs() []string {
	s.mu.RLock()
	ids := lo.Keys(s.ids)
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Len returns the number of liked songs.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
