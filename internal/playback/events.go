package playback

import "time"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a track is loaded for playback.
//
// Emitted by PlayIndex, StartPlayback, Next, Previous, a replay after the
// natural end of a track, Restore, and Reset (with a nil Current).
// The window title, the media session and the like indicator are all
// projections of this event.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// VolumeChange is emitted when volume or mute changes.
type VolumeChange struct {
	Level float64
	Muted bool
}

// IdleEvent is emitted when the end of the queue is reached and playback
// stops without a next track.
type IdleEvent struct {
	LastIndex int
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g., "play", "resume"
	Path      string // resolved source if applicable
	Err       error
}
