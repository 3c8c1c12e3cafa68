package playlist

// Shuffler is the randomness the queue needs to permute itself.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// PlayingQueue wraps a Playlist with the index of the playing track.
//
// PlayingQueue is not safe for concurrent use; the playback service
// serializes access so that content and index always change together.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int // -1 iff empty
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// Current returns the current track, or nil if none.
func (q *PlayingQueue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the index of the current track (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Track returns the track at index, or nil if out of bounds.
func (q *PlayingQueue) Track(index int) *Track {
	return q.playlist.Track(index)
}

// HasNext returns true if there's a track after the current one.
func (q *PlayingQueue) HasNext() bool {
	return q.currentIndex < q.playlist.Len()-1
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// StartPlayback replaces the queue from a user selection.
//
// The queue becomes a copy of context, or just clicked when context is
// empty. The current index is the first track sharing clicked's audio
// source, or 0 when it is not part of context. Returns the new index.
func (q *PlayingQueue) StartPlayback(clicked Track, context []Track) int {
	if len(context) == 0 {
		context = []Track{clicked}
	}
	q.playlist.Set(context)
	q.currentIndex = max(q.playlist.IndexOfSource(clicked.AudioSrc), 0)
	return q.currentIndex
}

// Replace installs tracks with the given current index (used on restore).
// An out-of-range index is clamped to 0; an empty slice clears the queue.
func (q *PlayingQueue) Replace(tracks []Track, index int) *Track {
	q.playlist.Set(tracks)
	switch {
	case q.playlist.Len() == 0:
		q.currentIndex = -1
		return nil
	case index < 0 || index >= q.playlist.Len():
		q.currentIndex = 0
	default:
		q.currentIndex = index
	}
	return q.Current()
}

// PinAndShuffle moves the current track to position 0 and randomly permutes
// the remaining tracks. The current index becomes 0. No-op with fewer than
// two tracks or no current track.
func (q *PlayingQueue) PinAndShuffle(rng Shuffler) {
	if q.playlist.Len() < 2 || q.currentIndex < 0 {
		return
	}
	q.playlist.Move(q.currentIndex, 0)
	rest := q.playlist.tracks[1:]
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	q.currentIndex = 0
}

// Clear removes all tracks and resets the index.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = -1
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
