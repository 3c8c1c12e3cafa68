package api

import (
	"github.com/samber/lo"

	"github.com/llehouerou/mymusic/internal/playlist"
)

// Song is a song as returned by /api/songs.
type Song struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	ArtistName string `json:"artistName"`
	ArtistID   string `json:"artistId"`
	ArtURL     string `json:"artUrl"`
	AudioSrc   string `json:"audioSrc"`
	Plays      int    `json:"plays"`
	IsFavorite bool   `json:"isFavorite"`
}

// Track converts the song into a queue entry.
func (s Song) Track() playlist.Track {
	return playlist.Track{
		ID:         s.ID,
		Title:      s.Title,
		ArtistName: s.ArtistName,
		ArtistData: s.ArtistName,
		ArtURL:     s.ArtURL,
		AudioSrc:   s.AudioSrc,
		IsFavorite: s.IsFavorite,
	}
}

// Tracks converts a list of songs into queue entries.
func Tracks(songs []Song) []playlist.Track {
	return lo.Map(songs, func(s Song, _ int) playlist.Track { return s.Track() })
}

// Playlist is a curated list. Songs are only populated by Playlist(id)
// and PlaylistSections.
type Playlist struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Songs       []Song `json:"songs"`
}

// Artist is an artist entry from search or /api/artists.
type Artist struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	AvatarURL        string `json:"avatarUrl"`
	Bio              string `json:"bio,omitempty"`
	MonthlyListeners string `json:"monthlyListeners,omitempty"`
	Songs            []Song `json:"songs,omitempty"`
}

// SearchResult is the response of /api/search.
type SearchResult struct {
	Artists []Artist `json:"artists"`
	Songs   []Song   `json:"songs"`
}

// User is the signed-in user returned by login.
type User struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

// LikeResult is the response of a like toggle.
type LikeResult struct {
	Message string `json:"message"`
}
