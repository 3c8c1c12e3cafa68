package likes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mymusic/internal/api"
)

type fakeBackend struct {
	favorites   []api.Song
	favErr      error
	toggleErr   error
	toggleCalls []string
}

func (f *fakeBackend) Favorites(context.Context) ([]api.Song, error) {
	return f.favorites, f.favErr
}

func (f *fakeBackend) ToggleLike(_ context.Context, id string) (string, error) {
	f.toggleCalls = append(f.toggleCalls, id)
	if f.toggleErr != nil {
		return "", f.toggleErr
	}
	return "ok " + id, nil
}

func TestSet_Load(t *testing.T) {
	b := &fakeBackend{favorites: []api.Song{{ID: "b"}, {ID: "a"}}}
	s := New(b)

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))
	assert.False(t, s.Has(""))
	assert.Equal(t, []string{"a", "b"}, s.IDs())
}

func TestSet_LoadErrorKeepsSet(t *testing.T) {
	b := &fakeBackend{favorites: []api.Song{{ID: "a"}}}
	s := New(b)
	require.NoError(t, s.Load(context.Background()))

	b.favErr = api.ErrUnauthorized
	err := s.Load(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.True(t, s.Has("a"))
}

func TestSet_Toggle(t *testing.T) {
	b := &fakeBackend{}
	s := New(b)

	liked, msg, err := s.Toggle(context.Background(), "x")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, "ok x", msg)
	assert.True(t, s.Has("x"))

	liked, _, err = s.Toggle(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, s.Has("x"))
	assert.Equal(t, []string{"x", "x"}, b.toggleCalls)
}

func TestSet_ToggleFailureLeavesSet(t *testing.T) {
	b := &fakeBackend{toggleErr: errors.New("offline")}
	s := New(b)

	liked, msg, err := s.Toggle(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, liked)
	assert.Empty(t, msg)
	assert.Equal(t, 0, s.Len())
}

func TestSet_Clear(t *testing.T) {
	s := New(&fakeBackend{favorites: []api.Song{{ID: "a"}}})
	require.NoError(t, s.Load(context.Background()))
	s.Clear()
	assert.False(t, s.Has("a"))
	assert.Empty(t, s.IDs())
}
