// internal/playback/service_impl.go
package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/llehouerou/mymusic/internal/player"
	"github.com/llehouerou/mymusic/internal/playlist"
)

// DefaultPreviousThreshold is how far into a track Previous restarts it
// instead of going back.
const DefaultPreviousThreshold = 3 * time.Second

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	player    player.Interface
	queue     *playlist.PlayingQueue
	baseURL   string
	preloader Preloader
	rng       Rand
	logger    *slog.Logger
	prevLimit time.Duration

	shuffle       bool
	repeat        RepeatMode
	loaded        bool // a source has been handed to the player
	resumeOnReady bool // restored session was playing; resume when ready
	lastState     State

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// Option configures the service.
type Option func(*serviceImpl)

// WithBaseURL sets the server URL relative audio sources resolve against.
func WithBaseURL(u string) Option {
	return func(s *serviceImpl) { s.baseURL = u }
}

// WithPreloader sets the preloader warmed with the next track.
func WithPreloader(p Preloader) Option {
	return func(s *serviceImpl) { s.preloader = p }
}

// WithRand sets the randomness used by shuffle.
func WithRand(r Rand) Option {
	return func(s *serviceImpl) { s.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *serviceImpl) { s.logger = l }
}

// WithPreviousThreshold sets how much elapsed time makes Previous restart
// the current track.
func WithPreviousThreshold(d time.Duration) Option {
	return func(s *serviceImpl) { s.prevLimit = d }
}

// New creates a new playback service and starts watching the player.
func New(p player.Interface, q *playlist.PlayingQueue, opts ...Option) Service {
	s := &serviceImpl{
		player:    p,
		queue:     q,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // shuffle order
		logger:    slog.Default(),
		prevLimit: DefaultPreviousThreshold,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastState = s.stateLocked()
	go s.watchPlayer()
	return s
}

func (s *serviceImpl) watchPlayer() {
	for {
		select {
		case <-s.done:
			return
		case <-s.player.FinishedChan():
			s.handleTrackFinished()
		case <-s.player.Ready():
			s.handleReady()
		case err := <-s.player.Errors():
			s.handleLoadError(err)
		}
	}
}

// StartPlayback replaces the queue from a user selection and plays it.
func (s *serviceImpl) StartPlayback(clicked Track, context []Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.queue.StartPlayback(clicked, context)
	if s.shuffle && s.queue.Len() > 1 {
		s.queue.PinAndShuffle(s.rng)
		idx = 0
	}
	s.emitQueueLocked()
	return s.playIndexLocked(idx)
}

// PlayIndex plays the track at index.
func (s *serviceImpl) PlayIndex(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playIndexLocked(index)
}

func (s *serviceImpl) playIndexLocked(index int) error {
	if index < 0 || index >= s.queue.Len() {
		s.logger.Warn("play index out of range", "index", index, "len", s.queue.Len())
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	prev := s.currentCopyLocked()
	prevIndex := s.queue.CurrentIndex()
	track := *s.queue.JumpTo(index)
	src := ResolveSource(s.baseURL, track.AudioSrc)

	s.loaded = true
	s.resumeOnReady = false
	err := s.player.Load(src, player.LoadOptions{})

	s.emit(func(sub *Subscription) {
		sub.sendTrack(TrackChange{
			Previous:      prev,
			Current:       &track,
			PreviousIndex: prevIndex,
			Index:         index,
		})
	})
	if err != nil {
		s.logger.Warn("cannot play track", "title", track.Title, "src", src, "error", err)
		s.emitErrorLocked("play", src, err)
	}
	s.syncStateLocked()
	s.preloadLocked(index + 1)
	return nil
}

func (s *serviceImpl) preloadLocked(index int) {
	if s.preloader == nil {
		return
	}
	next := s.queue.Track(index)
	if next == nil {
		return
	}
	src := ResolveSource(s.baseURL, next.AudioSrc)
	if player.CanPlay(src) {
		s.preloader.Preload(src)
	}
}

// Pause pauses playback.
func (s *serviceImpl) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player.State() == player.Playing {
		s.player.Pause()
	}
	s.resumeOnReady = false
	s.syncStateLocked()
	return nil
}

// Stop stops playback; the queue is kept.
func (s *serviceImpl) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.Stop()
	s.resumeOnReady = false
	s.syncStateLocked()
	return nil
}

// Toggle switches between playing and paused. With nothing loaded it
// starts the queue from index 0.
func (s *serviceImpl) Toggle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if s.queue.IsEmpty() {
			return ErrNothingToPlay
		}
		return s.playIndexLocked(0)
	}

	switch s.player.State() {
	case player.Playing:
		s.player.Pause()
	case player.Paused:
		s.resumeOnReady = false
		if err := s.player.Resume(); err != nil {
			s.emitErrorLocked("resume", "", err)
		}
	case player.Stopped:
		if s.queue.IsEmpty() {
			return ErrNothingToPlay
		}
		return s.playIndexLocked(max(s.queue.CurrentIndex(), 0))
	}
	s.syncStateLocked()
	return nil
}

// Next plays the following track. It always continues: repeat one only
// governs the natural end of a track.
func (s *serviceImpl) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queue.IsEmpty() {
		return ErrEmptyQueue
	}
	return s.playIndexLocked(NextIndex(s.queue.CurrentIndex(), s.queue.Len(), s.shuffle, s.rng))
}

// Previous restarts the current track when past the threshold, otherwise
// plays the previous one.
func (s *serviceImpl) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queue.IsEmpty() {
		return ErrEmptyQueue
	}
	if s.loaded && s.player.Position() > s.prevLimit {
		s.player.SeekTo(0)
		s.emit(func(sub *Subscription) { sub.sendPosition(0) })
		return nil
	}
	return s.playIndexLocked(PreviousIndex(s.queue.CurrentIndex(), s.queue.Len(), s.shuffle, s.rng))
}

// Seek moves the position by delta.
func (s *serviceImpl) Seek(delta time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.player.State().IsActive() {
		return nil
	}
	s.player.Seek(delta)
	pos := s.player.Position()
	s.emit(func(sub *Subscription) { sub.sendPosition(pos) })
	return nil
}

// SeekTo moves to an absolute position.
func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.player.State().IsActive() {
		return nil
	}
	s.player.SeekTo(position)
	pos := s.player.Position()
	s.emit(func(sub *Subscription) { sub.sendPosition(pos) })
	return nil
}

// SetVolume sets the volume level (0.0 to 1.0).
func (s *serviceImpl) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetVolume(level)
	s.emitVolumeLocked()
}

// Volume returns the volume level.
func (s *serviceImpl) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Volume()
}

// ToggleMute flips the mute flag and returns the new value.
func (s *serviceImpl) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	muted := !s.player.Muted()
	s.player.SetMuted(muted)
	s.emitVolumeLocked()
	return muted
}

// Muted reports whether output is muted.
func (s *serviceImpl) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Muted()
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *serviceImpl) stateLocked() State {
	switch s.player.State() {
	case player.Playing:
		return StatePlaying
	case player.Paused:
		return StatePaused
	default:
		return StateStopped
	}
}

// IsPlaying reports whether playback is running.
func (s *serviceImpl) IsPlaying() bool {
	return s.State() == StatePlaying
}

// Loading reports whether the player is still fetching the current source.
func (s *serviceImpl) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Loading()
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Duration()
}

// CurrentTrack returns a copy of the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentCopyLocked()
}

func (s *serviceImpl) currentCopyLocked() *Track {
	t := s.queue.Current()
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// QueueTracks returns a copy of all tracks in the queue.
func (s *serviceImpl) QueueTracks() []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Tracks()
}

// QueueCurrentIndex returns the current queue index (-1 if none).
func (s *serviceImpl) QueueCurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.CurrentIndex()
}

func (s *serviceImpl) QueueLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Len()
}

func (s *serviceImpl) QueueIsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.IsEmpty()
}

func (s *serviceImpl) QueueHasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.HasNext()
}

// RepeatMode returns the current repeat mode.
func (s *serviceImpl) RepeatMode() RepeatMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repeat
}

// SetRepeatMode sets the repeat mode.
func (s *serviceImpl) SetRepeatMode(mode RepeatMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repeat == mode {
		return
	}
	s.repeat = mode
	s.emitModeLocked()
}

// CycleRepeatMode advances none → all → one → none.
func (s *serviceImpl) CycleRepeatMode() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeat = s.repeat.Next()
	s.emitModeLocked()
	return s.repeat
}

// Shuffle returns whether shuffle is enabled.
func (s *serviceImpl) Shuffle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shuffle
}

// SetShuffle enables or disables shuffle. Turning it on pins the playing
// track to the head of the queue and permutes the rest; turning it off
// keeps the current order.
func (s *serviceImpl) SetShuffle(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setShuffleLocked(enabled)
}

func (s *serviceImpl) setShuffleLocked(enabled bool) {
	if s.shuffle == enabled {
		return
	}
	s.shuffle = enabled
	if enabled && s.queue.Len() > 1 && s.queue.CurrentIndex() >= 0 {
		s.queue.PinAndShuffle(s.rng)
		s.emitQueueLocked()
	}
	s.emitModeLocked()
}

// ToggleShuffle flips shuffle and returns the new value.
func (s *serviceImpl) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setShuffleLocked(!s.shuffle)
	return s.shuffle
}

// Snapshot captures the restorable session state.
func (s *serviceImpl) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Tracks:   s.queue.Tracks(),
		Index:    s.queue.CurrentIndex(),
		Position: s.player.Position(),
		Playing:  s.player.State() == player.Playing || s.resumeOnReady,
		Shuffle:  s.shuffle,
		Repeat:   s.repeat,
		Volume:   s.player.Volume(),
	}
}

// Restore reinstates a saved session. The saved track is loaded paused at
// the saved position and resumed once ready if snap.Playing is set.
func (s *serviceImpl) Restore(snap Snapshot) error {
	if len(snap.Tracks) == 0 {
		return ErrEmptyQueue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.currentCopyLocked()
	prevIndex := s.queue.CurrentIndex()

	s.player.Stop()
	s.queue.Replace(snap.Tracks, snap.Index)
	s.shuffle = snap.Shuffle
	s.repeat = snap.Repeat
	s.player.SetVolume(snap.Volume)
	s.emitQueueLocked()
	s.emitModeLocked()
	s.emitVolumeLocked()

	track := *s.queue.Current()
	index := s.queue.CurrentIndex()
	src := ResolveSource(s.baseURL, track.AudioSrc)
	s.loaded = true
	s.resumeOnReady = false
	err := s.player.Load(src, player.LoadOptions{StartAt: snap.Position, Paused: true})
	s.emit(func(sub *Subscription) {
		sub.sendTrack(TrackChange{Previous: prev, Current: &track, PreviousIndex: prevIndex, Index: index})
	})
	if err != nil {
		s.logger.Warn("cannot load restored track", "title", track.Title, "src", src, "error", err)
		s.emitErrorLocked("restore", src, err)
	} else {
		s.resumeOnReady = snap.Playing
	}
	s.syncStateLocked()
	s.preloadLocked(index + 1)
	return nil
}

// Reset stops playback and empties the queue.
func (s *serviceImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.currentCopyLocked()
	prevIndex := s.queue.CurrentIndex()

	s.player.Stop()
	s.queue.Clear()
	s.loaded = false
	s.resumeOnReady = false

	s.emitQueueLocked()
	s.emit(func(sub *Subscription) {
		sub.sendTrack(TrackChange{Previous: prev, PreviousIndex: prevIndex, Index: -1})
		sub.sendIdle(IdleEvent{LastIndex: prevIndex})
	})
	s.syncStateLocked()
}

func (s *serviceImpl) handleTrackFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	cur := s.queue.CurrentIndex()
	d := EndOfTrack(cur, s.queue.Len(), s.shuffle, s.repeat, s.rng)
	switch d.Action {
	case EndStop:
		s.player.Stop()
		s.syncStateLocked()
		s.emit(func(sub *Subscription) { sub.sendIdle(IdleEvent{LastIndex: cur}) })
	case EndReplay, EndAdvance:
		_ = s.playIndexLocked(d.Index)
	}
}

func (s *serviceImpl) handleReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resumeOnReady {
		return
	}
	s.resumeOnReady = false
	if err := s.player.Resume(); err != nil {
		s.logger.Warn("autoplay blocked, restored session stays paused", "error", err)
		return
	}
	s.syncStateLocked()
}

func (s *serviceImpl) handleLoadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasRestoring := s.resumeOnReady
	s.resumeOnReady = false
	if wasRestoring && errors.Is(err, player.ErrOutputBlocked) {
		s.logger.Warn("autoplay blocked, restored session stays paused", "error", err)
		s.syncStateLocked()
		return
	}

	var src string
	var le *player.LoadError
	if errors.As(err, &le) {
		src = le.Src
	}
	s.logger.Warn("playback failed", "src", src, "error", err)
	s.emitErrorLocked("play", src, err)
	s.syncStateLocked()
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

func (s *serviceImpl) emit(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

// syncStateLocked emits a StateChange when the player state moved since
// the last emitted one.
func (s *serviceImpl) syncStateLocked() {
	cur := s.stateLocked()
	if cur == s.lastState {
		return
	}
	e := StateChange{Previous: s.lastState, Current: cur}
	s.lastState = cur
	s.emit(func(sub *Subscription) { sub.sendState(e) })
}

func (s *serviceImpl) emitQueueLocked() {
	e := QueueChange{Tracks: s.queue.Tracks(), Index: s.queue.CurrentIndex()}
	s.emit(func(sub *Subscription) { sub.sendQueue(e) })
}

func (s *serviceImpl) emitModeLocked() {
	e := ModeChange{RepeatMode: s.repeat, Shuffle: s.shuffle}
	s.emit(func(sub *Subscription) { sub.sendMode(e) })
}

func (s *serviceImpl) emitVolumeLocked() {
	e := VolumeChange{Level: s.player.Volume(), Muted: s.player.Muted()}
	s.emit(func(sub *Subscription) { sub.sendVolume(e) })
}

func (s *serviceImpl) emitErrorLocked(op, path string, err error) {
	e := ErrorEvent{Operation: op, Path: path, Err: err}
	s.emit(func(sub *Subscription) { sub.sendError(e) })
}
