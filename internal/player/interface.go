package player

import "time"

// LoadOptions control how a freshly loaded source starts.
type LoadOptions struct {
	StartAt time.Duration // seek here as soon as the source is decodable
	Paused  bool          // stay paused once ready instead of playing
}

// Interface defines the player contract for dependency injection and testing.
//
// Load returns immediately; readiness, failures and natural end of track are
// reported asynchronously on Ready, Errors and FinishedChan.
type Interface interface {
	Load(src string, opts LoadOptions) error
	Stop()
	Pause()
	Resume() error
	State() State
	Loading() bool
	Position() time.Duration
	Duration() time.Duration
	Seek(delta time.Duration)
	SeekTo(pos time.Duration)
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	FinishedChan() <-chan struct{}
	Ready() <-chan struct{}
	Errors() <-chan error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
