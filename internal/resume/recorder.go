package resume

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/llehouerou/mymusic/internal/playback"
)

const (
	// DefaultInterval is the playback time between periodic saves.
	DefaultInterval = time.Second
	saveTimeout     = 5 * time.Second
)

// Recorder saves the session whenever the player changes state, and every
// interval of playback time while playing.
type Recorder struct {
	svc      playback.Service
	store    Store
	logger   *slog.Logger
	interval time.Duration

	restore Options

	mu      sync.Mutex
	key     string
	lastPos time.Duration
	saved   bool

	sub     *playback.Subscription
	done    chan struct{}
	wg      sync.WaitGroup
	started bool
	closed  bool
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithInterval sets the periodic save interval.
func WithInterval(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) RecorderOption {
	return func(r *Recorder) { r.logger = l }
}

// WithRestoreOptions sets the options Switch restores with.
func WithRestoreOptions(o Options) RecorderOption {
	return func(r *Recorder) { r.restore = o }
}

// NewRecorder creates a recorder saving under key. Call Start to begin.
func NewRecorder(svc playback.Service, store Store, key string, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		svc:      svc,
		store:    store,
		key:      key,
		logger:   slog.Default(),
		interval: DefaultInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start subscribes to the service and saves in the background.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.closed {
		return
	}
	r.started = true
	r.sub = r.svc.Subscribe()
	r.wg.Add(1)
	go r.run()
}

func (r *Recorder) run() {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-r.sub.Done:
			return
		case <-r.sub.StateChanged:
			r.saveLogged()
		case <-r.sub.TrackChanged:
			r.saveLogged()
		case <-r.sub.QueueChanged:
			r.saveLogged()
		case <-r.sub.ModeChanged:
			r.saveLogged()
		case <-r.sub.VolumeChanged:
			r.saveLogged()
		case <-r.sub.PositionChanged:
			r.saveLogged()
		case <-ticker.C:
			r.tick()
		}
	}
}

// tick saves while playing once the position moved by at least interval
// since the last save.
func (r *Recorder) tick() {
	if r.svc.State() != playback.StatePlaying {
		return
	}
	pos := r.svc.Position()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved && absDuration(pos-r.lastPos) < r.interval {
		return
	}
	if err := r.saveLocked(); err != nil {
		r.logger.Warn("periodic session save failed", "key", r.key, "error", err)
	}
}

func (r *Recorder) saveLogged() {
	if err := r.Save(); err != nil {
		r.logger.Warn("session save failed", "error", err)
	}
}

// Save writes the current snapshot immediately. An empty queue is not
// written: there is nothing to resume.
func (r *Recorder) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked()
}

func (r *Recorder) saveLocked() error {
	snap := r.svc.Snapshot()
	if len(snap.Tracks) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := r.store.SaveSession(ctx, ToSession(r.key, snap)); err != nil {
		return err
	}
	r.saved = true
	r.lastPos = snap.Position
	return nil
}

// Key returns the user key sessions are saved under.
func (r *Recorder) Key() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.key
}

// SetKey switches the user key, e.g. after login.
func (r *Recorder) SetKey(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.key = key
	r.saved = false
}

// Switch hands the player over to another user. The live session is saved
// under the current key first, then the session saved under key is
// restored. Without one the player is left empty.
func (r *Recorder) Switch(ctx context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if key == r.key {
		return false, nil
	}
	if err := r.saveLocked(); err != nil {
		r.logger.Warn("session save before switch failed", "key", r.key, "error", err)
	}
	r.svc.Reset()
	r.key = key
	r.saved = false

	opts := r.restore
	if opts.Logger == nil {
		opts.Logger = r.logger
	}
	return Restore(ctx, r.svc, r.store, key, opts)
}

// Clear empties the live session and deletes the saved one. The key is
// kept; callers switch it with SetKey afterwards.
func (r *Recorder) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.svc.Reset()
	r.saved = false
	return r.store.DeleteSession(ctx, r.key)
}

// Close stops background saving and writes a final snapshot.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.done)
	r.mu.Unlock()

	r.wg.Wait()
	return r.Save()
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
