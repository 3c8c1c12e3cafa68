//go:build linux

package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"

	"github.com/llehouerou/mymusic/internal/playback"
)

// Adapter exposes a playback.Service as an MPRIS media player over D-Bus,
// so desktop media keys and widgets drive the same operations as the TUI.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. baseURL resolves relative
// artwork paths.
func New(service playback.Service, baseURL string) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("mymusic", &rootAdapter{}, newPlayerAdapter(service, baseURL)),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "MyMusic", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}
