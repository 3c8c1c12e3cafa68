package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func sampleSession(key string) Session {
	return Session{
		UserKey: key,
		Tracks: []SessionTrack{
			{SongID: "s1", Title: "One", ArtistName: "A", ArtistData: "A", ArtURL: "/art/1.jpg", AudioSrc: "/uploads/1.mp3"},
			{Title: "Two", AudioSrc: "uploads/2.mp3", IsFavorite: true},
		},
		CurrentIndex: 1,
		Position:     83500 * time.Millisecond,
		IsPlaying:    true,
		Shuffle:      true,
		RepeatMode:   "all",
		Volume:       0.45,
		SavedAt:      time.Unix(1_700_000_000, 0),
	}
}

func TestGetSession_Missing(t *testing.T) {
	m := openTestManager(t)

	s, err := m.GetSession(context.Background(), "playerState_guest")

	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSaveAndGetSession(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()
	want := sampleSession("playerState_u1")

	require.NoError(t, m.SaveSession(ctx, want))
	got, err := m.GetSession(ctx, "playerState_u1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.Tracks, got.Tracks)
	assert.Equal(t, 1, got.CurrentIndex)
	assert.Equal(t, want.Position, got.Position)
	assert.InDelta(t, 83.5, got.CurrentTime, 1e-9)
	assert.True(t, got.IsPlaying)
	assert.True(t, got.Shuffle)
	assert.Equal(t, "all", got.RepeatMode)
	assert.InDelta(t, 0.45, got.Volume, 1e-9)
	assert.Equal(t, want.SavedAt.Unix(), got.SavedAt.Unix())
}

func TestSaveSession_OverwritesPrevious(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()
	require.NoError(t, m.SaveSession(ctx, sampleSession("k")))

	next := sampleSession("k")
	next.Tracks = next.Tracks[:1]
	next.CurrentIndex = 0
	next.RepeatMode = "one"
	require.NoError(t, m.SaveSession(ctx, next))

	got, err := m.GetSession(ctx, "k")
	require.NoError(t, err)
	assert.Len(t, got.Tracks, 1)
	assert.Equal(t, "one", got.RepeatMode)
}

func TestSessions_IsolatedPerKey(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()
	a := sampleSession("playerState_a")
	b := sampleSession("playerState_b")
	b.Tracks = b.Tracks[1:]
	require.NoError(t, m.SaveSession(ctx, a))
	require.NoError(t, m.SaveSession(ctx, b))

	require.NoError(t, m.DeleteSession(ctx, "playerState_a"))

	gotA, err := m.GetSession(ctx, "playerState_a")
	require.NoError(t, err)
	assert.Nil(t, gotA)
	gotB, err := m.GetSession(ctx, "playerState_b")
	require.NoError(t, err)
	require.NotNil(t, gotB)
	assert.Len(t, gotB.Tracks, 1)
}

func TestSaveSession_EmptyKey(t *testing.T) {
	m := openTestManager(t)

	err := m.SaveSession(context.Background(), Session{})

	assert.Error(t, err)
}

func TestListSessions(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()
	older := sampleSession("old")
	older.SavedAt = time.Unix(100, 0)
	require.NoError(t, m.SaveSession(ctx, older))
	require.NoError(t, m.SaveSession(ctx, sampleSession("new")))

	got, err := m.ListSessions(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].UserKey)
	assert.Equal(t, 2, got[0].TrackCount)
	assert.Equal(t, "old", got[1].UserKey)
}

func TestOpenPath_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	m, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, m.SaveSession(context.Background(), sampleSession("k")))
	require.NoError(t, m.Close())

	m2, err := OpenPath(path)
	require.NoError(t, err)
	defer m2.Close()
	got, err := m2.GetSession(context.Background(), "k")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
