//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/mymusic/internal/playback"
)

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the loop
// and shuffle extensions.
type playerAdapter struct {
	service playback.Service
	baseURL string
}

func newPlayerAdapter(service playback.Service, baseURL string) *playerAdapter {
	return &playerAdapter{service: service, baseURL: baseURL}
}

func (p *playerAdapter) Next() error {
	return p.service.Next()
}

func (p *playerAdapter) Previous() error {
	return p.service.Previous()
}

func (p *playerAdapter) Pause() error {
	return p.service.Pause()
}

func (p *playerAdapter) PlayPause() error {
	return p.service.Toggle()
}

func (p *playerAdapter) Stop() error {
	return p.service.Stop()
}

func (p *playerAdapter) Play() error {
	if p.service.IsPlaying() {
		return nil
	}
	return p.service.Toggle()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.service.Seek(time.Duration(offset) * time.Microsecond)
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.service.SeekTo(time.Duration(position) * time.Microsecond)
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.service.State() {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.service.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID, track.AudioSrc)),
		Length:  types.Microseconds(p.service.Duration().Microseconds()),
		Title:   track.Title,
		Artist:  []string{track.DisplayArtist()},
	}

	if track.ArtURL != "" {
		meta.ArtUrl = playback.ResolveSource(p.baseURL, track.ArtURL)
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	if p.service.Muted() {
		return 0, nil
	}
	return p.service.Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.service.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Manual next and previous wrap around, so any non-empty queue can move.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return !p.service.QueueIsEmpty(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return !p.service.QueueIsEmpty(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return !p.service.QueueIsEmpty(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.service.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	switch p.service.RepeatMode() {
	case playback.RepeatOne:
		return types.LoopStatusTrack, nil
	case playback.RepeatAll:
		return types.LoopStatusPlaylist, nil
	case playback.RepeatNone:
		return types.LoopStatusNone, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	switch status {
	case types.LoopStatusNone:
		p.service.SetRepeatMode(playback.RepeatNone)
	case types.LoopStatusTrack:
		p.service.SetRepeatMode(playback.RepeatOne)
	case types.LoopStatusPlaylist:
		p.service.SetRepeatMode(playback.RepeatAll)
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.service.Shuffle(), nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.service.SetShuffle(shuffle)
	return nil
}

func formatTrackID(id, src string) string {
	key := id
	if key == "" {
		key = src
	}
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
