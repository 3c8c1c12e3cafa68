// Package notify sends desktop notifications: over D-Bus on Linux, through
// beeep elsewhere.
package notify

import "sync"

const appName = "MyMusic"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier { return noopNotifier{} }

type noopNotifier struct{}

func (noopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (noopNotifier) Close(uint32) error                  { return nil }

// NowPlaying announces track changes, replacing the previous announcement
// instead of stacking them.
type NowPlaying struct {
	notifier Notifier

	mu     sync.Mutex
	lastID uint32
}

// NewNowPlaying wraps n.
func NewNowPlaying(n Notifier) *NowPlaying {
	return &NowPlaying{notifier: n}
}

// Track shows "title" by "artist".
func (p *NowPlaying) Track(title, artist string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	body := artist
	if body == "" {
		body = "Unknown artist"
	}
	id, err := p.notifier.Notify(Notification{
		Title:      title,
		Body:       body,
		Icon:       "audio-x-generic",
		Timeout:    5000,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}

// Dismiss closes the last announcement, if any.
func (p *NowPlaying) Dismiss() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastID == 0 {
		return nil
	}
	id := p.lastID
	p.lastID = 0
	return p.notifier.Close(id)
}
