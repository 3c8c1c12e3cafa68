package player

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Opener turns a source into a local file path, fetching it if needed.
type Opener interface {
	Open(ctx context.Context, src string) (string, error)
}

// localOpener treats every source as a path on disk.
type localOpener struct{}

func (localOpener) Open(_ context.Context, src string) (string, error) { return src, nil }

var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
	speakerErr  error
	speakerInit bool
)

// initSpeaker opens the audio device once, at the rate of the first track.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if !speakerInit {
		speakerInit = true
		speakerRate = rate
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			speakerErr = fmt.Errorf("%w: %w", ErrOutputBlocked, err)
		}
	}
	return speakerRate, speakerErr
}

// Player plays one source at a time through the beep speaker.
type Player struct {
	mu     sync.Mutex
	opener Opener

	state      State
	loading    bool
	gen        uint64 // bumped on every Load/Stop; stale loads and callbacks compare against it
	cancel     context.CancelFunc
	pendingPos time.Duration

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	volumeLevel float64
	muted       bool

	finishedCh chan struct{}
	readyCh    chan struct{}
	errCh      chan error
}

// New creates a player. A nil opener plays local paths directly.
func New(opener Opener) *Player {
	if opener == nil {
		opener = localOpener{}
	}
	return &Player{
		opener:      opener,
		state:       Stopped,
		volumeLevel: 1,
		finishedCh:  make(chan struct{}, 1),
		readyCh:     make(chan struct{}, 1),
		errCh:       make(chan error, 4),
	}
}

// Load replaces the current source. Sources without a decoder are rejected
// synchronously; everything else is fetched and decoded in the background.
func (p *Player) Load(src string, opts LoadOptions) error {
	if !CanPlay(src) {
		return &LoadError{
			Kind: KindUnsupported,
			Src:  src,
			Err:  fmt.Errorf("%w: %s", ErrUnsupportedFormat, Extension(src)),
		}
	}

	p.mu.Lock()
	p.releaseLocked()
	gen := p.gen
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.loading = true
	p.pendingPos = opts.StartAt
	if opts.Paused {
		p.state = Paused
	} else {
		p.state = Playing
	}
	p.mu.Unlock()

	drain(p.finishedCh)
	drain(p.readyCh)

	go p.load(ctx, gen, src)
	return nil
}

func (p *Player) load(ctx context.Context, gen uint64, src string) {
	path, err := p.opener.Open(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.fail(gen, &LoadError{Kind: KindNetwork, Src: src, Err: err})
		return
	}
	if ctx.Err() != nil {
		return
	}

	streamer, format, err := decodeFile(path)
	if err != nil {
		p.fail(gen, &LoadError{Kind: KindDecode, Src: src, Err: err})
		return
	}
	outRate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		p.fail(gen, err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		streamer.Close()
		return
	}

	if p.pendingPos > 0 {
		n := min(format.SampleRate.N(p.pendingPos), max(streamer.Len()-1, 0))
		if err := streamer.Seek(n); err != nil {
			p.emitError(&LoadError{Kind: KindDecode, Src: src, Err: fmt.Errorf("seek: %w", err)})
		}
	}

	var out beep.Streamer = streamer
	if format.SampleRate != outRate {
		out = beep.Resample(4, format.SampleRate, outRate, streamer)
	}
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: out, Paused: p.state != Playing}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.muted,
	}
	p.loading = false
	p.pendingPos = 0

	// The callback runs on the speaker goroutine with the speaker lock held;
	// it must not take p.mu synchronously.
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		go p.finished(gen)
	})))
	signal(p.readyCh)
}

func (p *Player) fail(gen uint64, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	p.loading = false
	p.pendingPos = 0
	p.state = Stopped
	p.emitError(err)
}

func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.state = Stopped
	p.mu.Unlock()
	signal(p.finishedCh)
}

// releaseLocked cancels any pending load and frees the current stream.
func (p *Player) releaseLocked() {
	p.gen++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.streamer != nil {
		speaker.Clear()
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.loading = false
	p.pendingPos = 0
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releaseLocked()
	p.state = Stopped
}

// Pause pauses playback. A pending load will start paused.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing {
		return
	}
	p.state = Paused
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
	}
}

// Resume resumes paused playback. It fails with ErrOutputBlocked when the
// audio device could not be opened.
func (p *Player) Resume() error {
	speakerMu.Lock()
	blocked := speakerErr
	speakerMu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return nil
	}
	if blocked != nil {
		return blocked
	}
	p.state = Playing
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
	return nil
}

// State returns the current state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Loading reports whether a source is still being fetched or decoded.
func (p *Player) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Position returns the current playback position. While loading it
// returns the position the source will start at.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return p.pendingPos
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position())
}

// Duration returns the length of the loaded source.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Seek moves the playback position by delta.
func (p *Player) Seek(delta time.Duration) {
	p.SeekTo(p.Position() + delta)
}

// SeekTo moves the playback position, clamped to the source bounds.
func (p *Player) SeekTo(pos time.Duration) {
	pos = max(pos, 0)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		if p.loading {
			p.pendingPos = pos
		}
		return
	}
	n := min(p.format.SampleRate.N(pos), max(p.streamer.Len()-1, 0))
	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		p.emitError(fmt.Errorf("seek: %w", err))
	}
}

// FinishedChan signals when the current source plays to its end.
func (p *Player) FinishedChan() <-chan struct{} { return p.finishedCh }

// Ready signals when a loaded source is decodable and positioned.
func (p *Player) Ready() <-chan struct{} { return p.readyCh }

// Errors delivers asynchronous load failures.
func (p *Player) Errors() <-chan error { return p.errCh }

func (p *Player) emitError(err error) {
	select {
	case p.errCh <- err:
	default:
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func drain(ch chan struct{}) {
	select {
	case <-ch:
	default:
	}
}
