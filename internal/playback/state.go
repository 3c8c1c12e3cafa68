// internal/playback/state.go
package playback

import (
	"fmt"

	"github.com/llehouerou/mymusic/internal/playlist"
)

// Track is the queue entry type exposed by the service.
type Track = playlist.Track

// State represents the playback state.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// RepeatMode defines what happens when a track ends on its own.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the persisted name of the mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatNone:
		return "none"
	case RepeatAll:
		return "all"
	case RepeatOne:
		return "one"
	default:
		return "unknown"
	}
}

// Label returns the notice shown when the mode is selected.
func (m RepeatMode) Label() string {
	switch m {
	case RepeatAll:
		return "Repeat all"
	case RepeatOne:
		return "Repeat one"
	default:
		return "Repeat off"
	}
}

// Next cycles none → all → one → none.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatNone:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatNone
	}
}

// ParseRepeatMode parses a persisted mode name.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch s {
	case "none":
		return RepeatNone, nil
	case "all":
		return RepeatAll, nil
	case "one":
		return RepeatOne, nil
	default:
		return RepeatNone, fmt.Errorf("unknown repeat mode %q", s)
	}
}
