//go:build !linux

package notify

import "github.com/gen2brain/beeep"

// beeepNotifier delivers notifications through the platform's native
// mechanism. It cannot replace or close them.
type beeepNotifier struct{}

// New returns a notifier backed by beeep on non-Linux platforms.
func New() (Notifier, error) {
	beeep.AppName = appName
	return beeepNotifier{}, nil
}

func (beeepNotifier) Notify(n Notification) (uint32, error) {
	if err := beeep.Notify(n.Title, n.Body, n.Icon); err != nil {
		return 0, err
	}
	return 0, nil
}

func (beeepNotifier) Close(uint32) error {
	return nil
}
