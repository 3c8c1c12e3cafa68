package playback

import (
	"errors"
	"time"
)

var (
	// ErrEmptyQueue is returned by navigation on an empty queue.
	ErrEmptyQueue = errors.New("queue is empty")
	// ErrInvalidIndex is returned when asked to play outside the queue.
	ErrInvalidIndex = errors.New("invalid queue index")
	// ErrNothingToPlay is returned by Toggle when nothing is loaded and the
	// queue is empty.
	ErrNothingToPlay = errors.New("nothing to play")
)

// Preloader warms the next track so that advancing is fast. It must not
// block and must not affect playback.
type Preloader interface {
	Preload(src string)
}

// Snapshot is the restorable part of a playback session.
type Snapshot struct {
	Tracks   []Track
	Index    int
	Position time.Duration
	Playing  bool
	Shuffle  bool
	Repeat   RepeatMode
	Volume   float64
}

// Service defines the playback service contract.
//
// Validation failures (empty queue, bad index) are returned. Failures to
// load or start a source are reported as ErrorEvent and never tear the
// session down.
type Service interface {
	// Playback control
	StartPlayback(clicked Track, context []Track) error
	PlayIndex(index int) error
	Pause() error
	Stop() error
	Toggle() error
	Next() error
	Previous() error
	Seek(delta time.Duration) error
	SeekTo(position time.Duration) error

	// Volume
	SetVolume(level float64)
	Volume() float64
	ToggleMute() bool
	Muted() bool

	// State queries
	State() State
	IsPlaying() bool
	Loading() bool
	Position() time.Duration
	Duration() time.Duration
	CurrentTrack() *Track

	// Queue queries
	QueueTracks() []Track
	QueueCurrentIndex() int
	QueueLen() int
	QueueIsEmpty() bool
	QueueHasNext() bool

	// Mode control
	RepeatMode() RepeatMode
	SetRepeatMode(mode RepeatMode)
	CycleRepeatMode() RepeatMode
	Shuffle() bool
	SetShuffle(enabled bool)
	ToggleShuffle() bool

	// Session
	Snapshot() Snapshot
	Restore(snap Snapshot) error
	Reset()

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
