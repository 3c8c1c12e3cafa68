package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestSessionKey(t *testing.T) {
	tests := []struct {
		name string
		info *UserInfo
		want string
	}{
		{"nil user", nil, "playerState_guest"},
		{"user id", &UserInfo{ID: "u1", Token: "x"}, "playerState_u1"},
		{"id from token", &UserInfo{Token: signToken(t, jwt.MapClaims{"id": "u2"})}, "playerState_u2"},
		{"token without id", &UserInfo{Token: signToken(t, jwt.MapClaims{"sub": "x"})}, "playerState_guest"},
		{"garbage token", &UserInfo{Token: "not-a-jwt"}, "playerState_guest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionKey(tt.info); got != tt.want {
				t.Errorf("SessionKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserInfo_TokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"no token", "", false},
		{"no exp", signToken(t, jwt.MapClaims{"id": "u"}), false},
		{"future exp", signToken(t, jwt.MapClaims{"id": "u", "exp": now.Add(time.Hour).Unix()}), false},
		{"past exp", signToken(t, jwt.MapClaims{"id": "u", "exp": now.Add(-time.Hour).Unix()}), true},
		{"unparseable", "abc.def", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &UserInfo{Token: tt.token}
			if got := u.TokenExpired(now); got != tt.want {
				t.Errorf("TokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserInfo_LoggedIn(t *testing.T) {
	now := time.Now()
	var nilUser *UserInfo
	assert.False(t, nilUser.LoggedIn(now))
	assert.False(t, (&UserInfo{ID: "u"}).LoggedIn(now))
	assert.True(t, (&UserInfo{Token: "opaque"}).LoggedIn(now))
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "sub", "user.json"))

	u, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.Save(&UserInfo{ID: "u1", Username: "ana", Token: "tok"}))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	u, err = s.Load()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "ana", u.Username)
	assert.Equal(t, "playerState_u1", SessionKey(u))

	require.NoError(t, s.Clear())
	u, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.Clear(), "clearing twice is fine")
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	u, err := NewStoreAt(path).Load()
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStore_WatchRemoval(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, s.Save(&UserInfo{ID: "u1", Token: "tok"}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *UserInfo, 16)
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, func(u *UserInfo) { changes <- u })
	}()

	// The watcher registers asynchronously, so keep toggling the file until
	// a removal is reported.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(5 * time.Second)
	present := true
	for {
		select {
		case u := <-changes:
			if u != nil {
				continue
			}
			cancel()
			require.NoError(t, <-done)
			return
		case <-ticker.C:
			if present {
				require.NoError(t, s.Clear())
			} else {
				require.NoError(t, s.Save(&UserInfo{ID: "u1", Token: "tok"}))
			}
			present = !present
		case <-deadline:
			t.Fatal("no change reported for removed credentials")
		}
	}
}

func TestStore_WatchStopsOnCancel(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "user.json"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, func(*UserInfo) {}) }()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
