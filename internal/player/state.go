package player

// State represents the playback state machine.
//
//	┌──────────┐  Load    ┌──────────┐
//	│  Stopped │ ───────▶ │  Playing │ ◀─┐
//	└──────────┘          └──────────┘   │ Resume
//	     ▲                  │      │     │
//	     │ Stop / finished  │ Pause└──▶ ┌──────────┐
//	     └──────────────────┴────────── │  Paused  │
//	                                    └──────────┘
//
// Load with LoadOptions.Paused enters Paused directly. A load in progress
// already reports its target state; Loading tells the two apart.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
