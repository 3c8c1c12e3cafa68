package playlist

import "github.com/samber/lo"

// Track is a playable song as served by the backend.
type Track struct {
	ID         string // backend song id (empty for ad-hoc sources)
	Title      string
	ArtistName string
	ArtistData string // display alias; falls back to ArtistName
	ArtURL     string
	AudioSrc   string // relative or absolute; identity for queue lookups
	IsFavorite bool
}

// DisplayArtist returns the artist shown to the user.
func (t Track) DisplayArtist() string {
	if t.ArtistData != "" {
		return t.ArtistData
	}
	return t.ArtistName
}

// withAlias fills the display alias from the artist name when missing.
func withAlias(t Track) Track {
	if t.ArtistData == "" {
		t.ArtistData = t.ArtistName
	}
	return t
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Set replaces the content of the playlist with a copy of tracks.
func (p *Playlist) Set(tracks []Track) {
	p.tracks = lo.Map(tracks, func(t Track, _ int) Track { return withAlias(t) })
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IndexOfSource returns the position of the first track whose audio source
// equals src, or -1.
func (p *Playlist) IndexOfSource(src string) int {
	_, idx, ok := lo.FindIndexOf(p.tracks, func(t Track) bool { return t.AudioSrc == src })
	if !ok {
		return -1
	}
	return idx
}

// Move moves the track at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.tracks) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.tracks) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	track := p.tracks[fromIndex]
	p.tracks = append(p.tracks[:fromIndex], p.tracks[fromIndex+1:]...)
	p.tracks = append(p.tracks[:toIndex], append([]Track{track}, p.tracks[toIndex:]...)...)
	return true
}
