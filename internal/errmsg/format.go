// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/player"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpSongsLoad     Op = "load songs"
	OpFavoritesLoad Op = "load favorites"
	OpPlaylistsLoad Op = "load playlists"
	OpPlaylistLoad  Op = "load playlist"
	OpArtistLoad    Op = "load artist"
	OpSearch        Op = "search"

	// Account operations
	OpLogin  Op = "log in"
	OpLogout Op = "log out"

	// Playback operations
	OpPlaybackStart  Op = "start playback"
	OpPlaybackResume Op = "resume playback"
	OpPlaybackSeek   Op = "seek"

	// Session operations
	OpSessionSave    Op = "save session"
	OpSessionRestore Op = "restore session"
	OpSessionClear   Op = "clear session"

	// Favorites
	OpFavoriteToggle Op = "update favorites"

	// Cache
	OpCacheClear Op = "clear audio cache"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Fixed notices shown to the user.
const (
	MsgSelectSong     = "Please select a song."
	MsgLoginToLike    = "Please log in to like songs."
	MsgSessionExpired = "Session expired. Please log in again."
	MsgTryAgain       = "An error occurred, please try again."
	MsgNothingToPlay  = "Nothing to play."
	MsgLoginForFavs   = "Please log in to see your favorites."
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Playback describes why a track could not be played.
func Playback(title string, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, player.ErrOutputBlocked) {
		return "Error: Audio output unavailable"
	}
	var le *player.LoadError
	if !errors.As(err, &le) {
		le = &player.LoadError{}
	}
	switch le.Kind {
	case player.KindAborted:
		return "Error: Audio loading aborted"
	case player.KindNetwork:
		return "Error: Network error while loading audio"
	case player.KindDecode:
		return "Error: Audio format not supported or file corrupted"
	case player.KindUnsupported:
		if ext := strings.TrimPrefix(player.Extension(le.Src), "."); ext != "" {
			return fmt.Sprintf("Warning: %s format is not supported", strings.ToUpper(ext))
		}
		return "Error: Audio format not supported"
	}
	if title == "" {
		return "Error: Cannot play this audio file"
	}
	return "Error: Cannot play " + title
}

// Like maps a like toggle failure to its notice.
func Like(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return MsgLoginToLike
	}
	return MsgTryAgain
}

// API maps a backend failure to its notice, calling out expired sessions.
func API(op Op, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return MsgSessionExpired
	}
	var se *api.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return fmt.Sprintf("Failed to %s: %s", op, se.Message)
	}
	return Format(op, err)
}
