// Package icons selects the glyphs used by the player bar and lists.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio       string
	Artist      string
	Playlist    string
	Play        string
	Pause       string
	Shuffle     string
	RepeatAll   string
	RepeatOne   string
	Favorite    string
	NotFavorite string
	Volume      string
	VolumeMute  string
}

var (
	nerdIcons = Icons{
		Audio:       "\uf001 ", // nf-fa-music
		Artist:      "\uf007 ", // nf-fa-user
		Playlist:    "󰲸 ",      // nf-md-playlist_music
		Play:        "\uf04b",  // nf-fa-play
		Pause:       "\uf04c",  // nf-fa-pause
		Shuffle:     "󰒟",       // nf-md-shuffle
		RepeatAll:   "󰑖",       // nf-md-repeat
		RepeatOne:   "󰑘",       // nf-md-repeat_once
		Favorite:    "󰣐",       // nf-md-heart
		NotFavorite: "󰣑",       // nf-md-heart_outline
		Volume:      "󰕾",       // nf-md-volume_high
		VolumeMute:  "󰖁",       // nf-md-volume_off
	}

	unicodeIcons = Icons{
		Audio:       "🎵 ",
		Artist:      "👤 ",
		Playlist:    "📋 ",
		Play:        "▶",
		Pause:       "⏸",
		Shuffle:     "🔀",
		RepeatAll:   "🔁",
		RepeatOne:   "🔂",
		Favorite:    "♥",
		NotFavorite: "♡",
		Volume:      "🔊",
		VolumeMute:  "🔇",
	}

	noneIcons = Icons{
		Play:        ">",
		Pause:       "||",
		Shuffle:     "[S]",
		RepeatAll:   "[R]",
		RepeatOne:   "[1]",
		Favorite:    "*",
		NotFavorite: "",
		Volume:      "vol",
		VolumeMute:  "mute",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set from the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAudio prefixes a song title with the audio icon.
func FormatAudio(name string) string {
	return current.Audio + name
}

// FormatArtist prefixes an artist name with the artist icon.
func FormatArtist(name string) string {
	return current.Artist + name
}

// FormatPlaylist prefixes a playlist title with the playlist icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// Play returns the playing indicator.
func Play() string { return current.Play }

// Pause returns the paused indicator.
func Pause() string { return current.Pause }

// Shuffle returns the shuffle icon.
func Shuffle() string { return current.Shuffle }

// RepeatAll returns the repeat all icon.
func RepeatAll() string { return current.RepeatAll }

// RepeatOne returns the repeat one icon.
func RepeatOne() string { return current.RepeatOne }

// Favorite returns the liked indicator.
func Favorite() string { return current.Favorite }

// NotFavorite returns the not-liked indicator, possibly empty.
func NotFavorite() string { return current.NotFavorite }

// Volume returns the volume icon.
func Volume() string { return current.Volume }

// VolumeMute returns the muted volume icon.
func VolumeMute() string { return current.VolumeMute }
