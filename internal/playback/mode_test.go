package playback

import (
	"math/rand/v2"
	"testing"
)

// seqRand returns a fixed sequence of draws.
type seqRand struct {
	draws []int
	calls int
}

func (r *seqRand) IntN(n int) int {
	v := r.draws[r.calls%len(r.draws)] % n
	r.calls++
	return v
}

func (r *seqRand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n-1; i++ {
		swap(i, n-1-i)
	}
}

func TestNextIndex_InOrder(t *testing.T) {
	tests := []struct {
		current, n, want int
	}{
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
		{-1, 3, 0},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := NextIndex(tt.current, tt.n, false, nil); got != tt.want {
			t.Errorf("NextIndex(%d, %d) = %d, want %d", tt.current, tt.n, got, tt.want)
		}
	}
}

func TestPreviousIndex_InOrder(t *testing.T) {
	tests := []struct {
		current, n, want int
	}{
		{2, 3, 1},
		{0, 3, 2},
		{0, 1, 0},
		{-1, 3, 2},
	}
	for _, tt := range tests {
		if got := PreviousIndex(tt.current, tt.n, false, nil); got != tt.want {
			t.Errorf("PreviousIndex(%d, %d) = %d, want %d", tt.current, tt.n, got, tt.want)
		}
	}
}

func TestNextIndex_EmptyQueue(t *testing.T) {
	if got := NextIndex(0, 0, true, nil); got != -1 {
		t.Errorf("NextIndex on empty queue = %d, want -1", got)
	}
}

func TestNextIndex_ShuffleRerollsCollision(t *testing.T) {
	r := &seqRand{draws: []int{2, 2, 2, 0}}

	got := NextIndex(2, 4, true, r)

	if got != 0 {
		t.Errorf("NextIndex() = %d, want 0", got)
	}
	if r.calls != 4 {
		t.Errorf("IntN called %d times, want 4", r.calls)
	}
}

func TestNextIndex_ShuffleSingleTrack(t *testing.T) {
	r := &seqRand{draws: []int{0}}

	if got := NextIndex(0, 1, true, r); got != 0 {
		t.Errorf("NextIndex() = %d, want 0", got)
	}
	if r.calls != 1 {
		t.Errorf("IntN called %d times, want 1", r.calls)
	}
}

func TestNextIndex_ShuffleNeverRepeats(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	current := 0
	for range 500 {
		next := NextIndex(current, 5, true, rng)
		if next == current || next < 0 || next >= 5 {
			t.Fatalf("NextIndex(%d, 5) = %d", current, next)
		}
		current = next
	}
}

func TestPreviousIndex_Shuffle(t *testing.T) {
	r := &seqRand{draws: []int{1, 3}}

	if got := PreviousIndex(1, 4, true, r); got != 3 {
		t.Errorf("PreviousIndex() = %d, want 3", got)
	}
}

func TestEndOfTrack(t *testing.T) {
	tests := []struct {
		name    string
		current int
		n       int
		shuffle bool
		repeat  RepeatMode
		want    Decision
	}{
		{"repeat one replays", 1, 3, false, RepeatOne, Decision{EndReplay, 1}},
		{"repeat one wins over shuffle", 1, 3, true, RepeatOne, Decision{EndReplay, 1}},
		{"middle advances", 0, 3, false, RepeatNone, Decision{EndAdvance, 1}},
		{"last stops", 2, 3, false, RepeatNone, Decision{EndStop, 2}},
		{"last wraps with repeat all", 2, 3, false, RepeatAll, Decision{EndAdvance, 0}},
		{"single track stops", 0, 1, false, RepeatNone, Decision{EndStop, 0}},
		{"single track repeat all replays index 0", 0, 1, false, RepeatAll, Decision{EndAdvance, 0}},
		{"empty queue stops", -1, 0, false, RepeatAll, Decision{EndStop, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndOfTrack(tt.current, tt.n, tt.shuffle, tt.repeat, nil)
			if got != tt.want {
				t.Errorf("EndOfTrack() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEndOfTrack_ShuffleOnLastTrackContinues(t *testing.T) {
	r := &seqRand{draws: []int{0}}

	got := EndOfTrack(2, 3, true, RepeatNone, r)

	if got.Action != EndAdvance || got.Index != 0 {
		t.Errorf("EndOfTrack() = %+v, want advance to 0", got)
	}
}
