package player

import (
	"sync"
	"time"
)

// LoadCall records one call to Mock.Load.
type LoadCall struct {
	Src  string
	Opts LoadOptions
}

// Mock is a test double for Player.
type Mock struct {
	mu sync.Mutex

	state     State
	loading   bool
	position  time.Duration
	duration  time.Duration
	volume    float64
	muted     bool
	loadErr   error
	resumeErr error

	loadCalls   []LoadCall
	seekCalls   []time.Duration
	resumeCalls int

	finishedCh chan struct{}
	readyCh    chan struct{}
	errCh      chan error
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     1,
		finishedCh: make(chan struct{}, 1),
		readyCh:    make(chan struct{}, 1),
		errCh:      make(chan error, 1),
	}
}

func (m *Mock) Load(src string, opts LoadOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, LoadCall{Src: src, Opts: opts})
	if m.loadErr != nil {
		m.state = Stopped
		return m.loadErr
	}
	m.loading = true
	m.position = opts.StartAt
	if opts.Paused {
		m.state = Paused
	} else {
		m.state = Playing
	}
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
	m.loading = false
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumeCalls++
	if m.state != Paused {
		return nil
	}
	if m.resumeErr != nil {
		return m.resumeErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Seek(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
	m.position = max(m.position+d, 0)
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = ClampVolume(level)
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) FinishedChan() <-chan struct{} { return m.finishedCh }

func (m *Mock) Ready() <-chan struct{} { return m.readyCh }

func (m *Mock) Errors() <-chan error { return m.errCh }

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) SetResumeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumeErr = err
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) LoadCalls() []LoadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LoadCall(nil), m.loadCalls...)
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) ResumeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resumeCalls
}

// SimulateReady marks the pending load as complete.
func (m *Mock) SimulateReady() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
	signal(m.readyCh)
}

// SimulateFinished simulates a track playing to its end.
func (m *Mock) SimulateFinished() {
	m.mu.Lock()
	m.state = Stopped
	m.mu.Unlock()
	signal(m.finishedCh)
}

// SimulateError simulates an asynchronous load failure.
func (m *Mock) SimulateError(err error) {
	m.mu.Lock()
	m.state = Stopped
	m.loading = false
	m.mu.Unlock()
	select {
	case m.errCh <- err:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
