package playback

// Rand is the randomness the mode rules need. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NextIndex picks the track that follows current in a queue of length n.
//
// In order it wraps from the last index to 0. With shuffle it draws a
// uniform index, re-drawing while it equals current so that a queue with
// more than one track always moves.
func NextIndex(current, n int, shuffle bool, rng Rand) int {
	if n <= 0 {
		return -1
	}
	if shuffle {
		return randomOther(current, n, rng)
	}
	return (current + 1) % n
}

// PreviousIndex picks the track before current, wrapping from 0 to the last
// index. With shuffle it follows the same random rule as NextIndex.
func PreviousIndex(current, n int, shuffle bool, rng Rand) int {
	if n <= 0 {
		return -1
	}
	if shuffle {
		return randomOther(current, n, rng)
	}
	if current < 0 {
		return n - 1
	}
	return (current - 1 + n) % n
}

func randomOther(current, n int, rng Rand) int {
	i := rng.IntN(n)
	for n > 1 && i == current {
		i = rng.IntN(n)
	}
	return i
}

// EndAction tells the controller what to do when a track ends on its own.
type EndAction int

const (
	EndStop EndAction = iota
	EndReplay
	EndAdvance
)

// Decision is the outcome of EndOfTrack.
type Decision struct {
	Action EndAction
	Index  int
}

// EndOfTrack decides what plays after the natural end of the track at
// current. Repeat one replays it. Without repeat and shuffle, the last
// track stops playback. Everything else advances like NextIndex.
func EndOfTrack(current, n int, shuffle bool, repeat RepeatMode, rng Rand) Decision {
	switch {
	case n <= 0 || current < 0:
		return Decision{Action: EndStop, Index: -1}
	case repeat == RepeatOne:
		return Decision{Action: EndReplay, Index: current}
	case repeat == RepeatNone && !shuffle && current == n-1:
		return Decision{Action: EndStop, Index: current}
	default:
		return Decision{Action: EndAdvance, Index: NextIndex(current, n, shuffle, rng)}
	}
}
