package resume

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/player"
	"github.com/llehouerou/mymusic/internal/playlist"
	"github.com/llehouerou/mymusic/internal/state"
)

func newService(t *testing.T) (playback.Service, *player.Mock) {
	t.Helper()
	p := player.NewMock()
	svc := playback.New(p, playlist.NewQueue(), playback.WithBaseURL("http://srv"))
	t.Cleanup(func() { svc.Close() })
	return svc, p
}

func validSession(key string) state.Session {
	return state.Session{
		UserKey: key,
		Tracks: []state.SessionTrack{
			{SongID: "1", Title: "One", ArtistName: "A", AudioSrc: "/uploads/1.mp3"},
			{SongID: "2", Title: "Two", ArtistName: "B", AudioSrc: "/uploads/2.mp3"},
		},
		CurrentIndex: 1,
		Position:     42 * time.Second,
		IsPlaying:    true,
		Shuffle:      true,
		RepeatMode:   "one",
		Volume:       0.3,
	}
}

func TestToSession_FromSession(t *testing.T) {
	snap := playback.Snapshot{
		Tracks:   []playlist.Track{{ID: "x", Title: "T", ArtistName: "A", ArtistData: "A", AudioSrc: "/a.mp3", IsFavorite: true}},
		Index:    0,
		Position: 7 * time.Second,
		Playing:  true,
		Repeat:   playback.RepeatAll,
		Volume:   0.5,
	}

	s := ToSession("playerState_u", snap)
	assert.Equal(t, "playerState_u", s.UserKey)
	assert.Equal(t, "all", s.RepeatMode)

	back, err := FromSession(&s)
	require.NoError(t, err)
	assert.Equal(t, snap, back)
}

func TestFromSession_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*state.Session)
	}{
		{"empty queue", func(s *state.Session) { s.Tracks = nil }},
		{"index past end", func(s *state.Session) { s.CurrentIndex = 2 }},
		{"negative index", func(s *state.Session) { s.CurrentIndex = -1 }},
		{"unknown repeat", func(s *state.Session) { s.RepeatMode = "forever" }},
		{"missing source", func(s *state.Session) { s.Tracks[0].AudioSrc = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession("k")
			tt.mutate(&s)

			_, err := FromSession(&s)

			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestFromSession_EmptyRepeatIsNone(t *testing.T) {
	s := validSession("k")
	s.RepeatMode = ""

	snap, err := FromSession(&s)

	require.NoError(t, err)
	assert.Equal(t, playback.RepeatNone, snap.Repeat)
	assert.Len(t, snap.Tracks, 2)
}

func TestFromSession_VolumeFallback(t *testing.T) {
	for _, v := range []float64{0, -1, 4} {
		s := validSession("k")
		s.Volume = v

		snap, err := FromSession(&s)

		require.NoError(t, err)
		assert.InDelta(t, DefaultVolume, snap.Volume, 1e-9, "volume %v", v)
	}
}

func TestRestore_NoSession(t *testing.T) {
	svc, p := newService(t)

	ok, err := Restore(context.Background(), svc, state.NewMock(), "playerState_guest", Options{Autoplay: true})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, p.LoadCalls())
	assert.InDelta(t, DefaultVolume, svc.Volume(), 1e-9)
}

func TestRestore_Malformed(t *testing.T) {
	svc, p := newService(t)
	store := state.NewMock()
	bad := validSession("k")
	bad.RepeatMode = "sometimes"
	require.NoError(t, store.SaveSession(context.Background(), bad))

	ok, err := Restore(context.Background(), svc, store, "k", Options{Autoplay: true, DefaultVolume: 0.5})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, p.LoadCalls())
	assert.True(t, svc.QueueIsEmpty())
	assert.InDelta(t, 0.5, svc.Volume(), 1e-9)
}

func TestRestore_StoreError(t *testing.T) {
	svc, _ := newService(t)
	store := state.NewMock()
	store.SetGetError(errors.New("disk gone"))

	ok, err := Restore(context.Background(), svc, store, "k", Options{})

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRestore_Success(t *testing.T) {
	svc, p := newService(t)
	store := state.NewMock()
	require.NoError(t, store.SaveSession(context.Background(), validSession("playerState_u1")))

	ok, err := Restore(context.Background(), svc, store, "playerState_u1", Options{Autoplay: true})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, svc.QueueLen())
	assert.Equal(t, 1, svc.QueueCurrentIndex())
	assert.True(t, svc.Shuffle())
	assert.Equal(t, playback.RepeatOne, svc.RepeatMode())
	assert.InDelta(t, 0.3, svc.Volume(), 1e-9)

	calls := p.LoadCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "http://srv/uploads/2.mp3", calls[0].Src)
	assert.Equal(t, player.LoadOptions{StartAt: 42 * time.Second, Paused: true}, calls[0].Opts)
	assert.True(t, svc.Snapshot().Playing, "resume is pending until the player is ready")
}

func TestRestore_AutoplayDisabled(t *testing.T) {
	svc, _ := newService(t)
	store := state.NewMock()
	require.NoError(t, store.SaveSession(context.Background(), validSession("k")))

	ok, err := Restore(context.Background(), svc, store, "k", Options{Autoplay: false})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, svc.Snapshot().Playing)
	assert.Equal(t, playback.StatePaused, svc.State())
}
