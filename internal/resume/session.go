// Package resume keeps the playback session of the signed-in user on disk
// and brings it back on startup.
package resume

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/samber/lo"

	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/playlist"
	"github.com/llehouerou/mymusic/internal/state"
)

// DefaultVolume is used when no session is restored.
const DefaultVolume = 0.7

// ErrMalformed marks a saved session that cannot be restored.
var ErrMalformed = errors.New("malformed session")

// Store is the part of state.Interface the package needs.
type Store interface {
	SaveSession(ctx context.Context, s state.Session) error
	GetSession(ctx context.Context, key string) (*state.Session, error)
	DeleteSession(ctx context.Context, key string) error
}

// ToSession converts a playback snapshot into a storable session.
func ToSession(key string, snap playback.Snapshot) state.Session {
	return state.Session{
		UserKey: key,
		Tracks: lo.Map(snap.Tracks, func(t playlist.Track, _ int) state.SessionTrack {
			return state.SessionTrack{
				SongID:     t.ID,
				Title:      t.Title,
				ArtistName: t.ArtistName,
				ArtistData: t.ArtistData,
				ArtURL:     t.ArtURL,
				AudioSrc:   t.AudioSrc,
				IsFavorite: t.IsFavorite,
			}
		}),
		CurrentIndex: snap.Index,
		Position:     snap.Position,
		IsPlaying:    snap.Playing,
		Shuffle:      snap.Shuffle,
		RepeatMode:   snap.Repeat.String(),
		Volume:       snap.Volume,
	}
}

// FromSession validates a stored session and converts it back.
func FromSession(s *state.Session) (playback.Snapshot, error) {
	if s == nil || len(s.Tracks) == 0 {
		return playback.Snapshot{}, fmt.Errorf("%w: empty queue", ErrMalformed)
	}
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Tracks) {
		return playback.Snapshot{}, fmt.Errorf("%w: index %d outside queue of %d", ErrMalformed, s.CurrentIndex, len(s.Tracks))
	}
	// An empty mode means no repeat.
	repeat := playback.RepeatNone
	if s.RepeatMode != "" {
		mode, err := playback.ParseRepeatMode(s.RepeatMode)
		if err != nil {
			return playback.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		repeat = mode
	}
	if _, bad := lo.Find(s.Tracks, func(t state.SessionTrack) bool { return t.AudioSrc == "" }); bad {
		return playback.Snapshot{}, fmt.Errorf("%w: track without audio source", ErrMalformed)
	}

	volume := s.Volume
	if math.IsNaN(volume) || volume <= 0 || volume > 1 {
		volume = DefaultVolume
	}

	return playback.Snapshot{
		Tracks: lo.Map(s.Tracks, func(t state.SessionTrack, _ int) playlist.Track {
			return playlist.Track{
				ID:         t.SongID,
				Title:      t.Title,
				ArtistName: t.ArtistName,
				ArtistData: t.ArtistData,
				ArtURL:     t.ArtURL,
				AudioSrc:   t.AudioSrc,
				IsFavorite: t.IsFavorite,
			}
		}),
		Index:    s.CurrentIndex,
		Position: max(s.Position, 0),
		Playing:  s.IsPlaying,
		Shuffle:  s.Shuffle,
		Repeat:   repeat,
		Volume:   volume,
	}, nil
}

// Options tune Restore.
type Options struct {
	// Autoplay allows resuming a session that was playing. When false the
	// session comes back paused, as if the output refused to start.
	Autoplay      bool
	DefaultVolume float64
	Logger        *slog.Logger
}

// Restore loads the session saved under key into svc. It reports whether a
// session was restored. A missing or malformed session is not an error:
// the service keeps its empty queue and gets the default volume.
func Restore(ctx context.Context, svc playback.Service, store Store, key string, opts Options) (bool, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	defVolume := opts.DefaultVolume
	if defVolume <= 0 || defVolume > 1 {
		defVolume = DefaultVolume
	}

	saved, err := store.GetSession(ctx, key)
	if err != nil {
		svc.SetVolume(defVolume)
		return false, fmt.Errorf("read session %s: %w", key, err)
	}
	if saved == nil {
		logger.Debug("no saved session", "key", key)
		svc.SetVolume(defVolume)
		return false, nil
	}

	snap, err := FromSession(saved)
	if err != nil {
		logger.Warn("ignoring saved session", "key", key, "error", err)
		svc.SetVolume(defVolume)
		return false, nil
	}
	if snap.Playing && !opts.Autoplay {
		logger.Warn("autoplay disabled, restored session stays paused", "key", key)
		snap.Playing = false
	}

	if err := svc.Restore(snap); err != nil {
		return false, fmt.Errorf("restore session %s: %w", key, err)
	}
	logger.Info("session restored", "key", key, "tracks", len(snap.Tracks), "index", snap.Index, "position", snap.Position)
	return true, nil
}
