// Package auth stores the signed-in user's credentials and derives the
// per-user session key from them.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/golang-jwt/jwt/v5"
)

const (
	guestKey      = "playerState_guest"
	sessionPrefix = "playerState_"
)

// UserInfo is the stored login response.
type UserInfo struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      string `json:"role,omitempty"`
	Token     string `json:"token"`
}

// UserID returns the user's id, falling back to the token's "id" claim.
func (u *UserInfo) UserID() string {
	if u == nil {
		return ""
	}
	if u.ID != "" {
		return u.ID
	}
	claims, ok := parseClaims(u.Token)
	if !ok {
		return ""
	}
	id, _ := claims["id"].(string)
	return id
}

// TokenExpired reports whether the token carries an exp claim in the past.
// Tokens that cannot be parsed are not considered expired; the server
// decides.
func (u *UserInfo) TokenExpired(now time.Time) bool {
	if u == nil || u.Token == "" {
		return false
	}
	claims, ok := parseClaims(u.Token)
	if !ok {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

// LoggedIn reports whether the info holds a token that is still usable.
func (u *UserInfo) LoggedIn(now time.Time) bool {
	return u != nil && u.Token != "" && !u.TokenExpired(now)
}

// SessionKey returns the storage key of the user's playback session.
func SessionKey(u *UserInfo) string {
	if id := u.UserID(); id != "" {
		return sessionPrefix + id
	}
	return guestKey
}

func parseClaims(token string) (jwt.MapClaims, bool) {
	if token == "" {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// Store persists UserInfo as a JSON file.
type Store struct {
	path string
}

// NewStore returns a store at the default XDG location.
func NewStore() (*Store, error) {
	path, err := xdg.ConfigFile("mymusic/user.json")
	if err != nil {
		return nil, fmt.Errorf("get credentials path: %w", err)
	}
	return &Store{path: path}, nil
}

// NewStoreAt returns a store backed by path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the credentials file path.
func (s *Store) Path() string { return s.path }

// Load returns the stored user, or nil when nobody is signed in. A corrupt
// file is treated as signed out.
func (s *Store) Load() (*UserInfo, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil //nolint:nilnil // signed out
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var u UserInfo
	if err := json.Unmarshal(data, &u); err != nil || u.Token == "" {
		return nil, nil //nolint:nilnil // unusable credentials
	}
	return &u, nil
}

// Save writes the user with owner-only permissions.
func (s *Store) Save(u *UserInfo) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes the stored user. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
