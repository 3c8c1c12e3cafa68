// internal/state/interface.go
package state

import "context"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, key string) (*Session, error)
	DeleteSession(ctx context.Context, key string) error
	ListSessions(ctx context.Context) ([]SessionSummary, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
