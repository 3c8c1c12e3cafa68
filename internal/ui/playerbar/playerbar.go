// Package playerbar renders the now-playing bar at the bottom of the TUI.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mymusic/internal/icons"
	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/ui/render"
	"github.com/llehouerou/mymusic/internal/ui/styles"
)

// Height is the rendered height: border, content, border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Artist   string
	Playing  bool
	Paused   bool
	Loading  bool
	Liked    bool
	Position time.Duration
	Duration time.Duration
	Shuffle  bool
	Repeat   playback.RepeatMode
	Volume   float64
	Muted    bool
}

// Idle reports whether there is no track to show.
func (s State) Idle() bool {
	return !s.Playing && !s.Paused && s.Title == ""
}

// NewState reads the bar state from the playback service. liked reports
// whether a song id is in the user's favorites.
func NewState(svc playback.Service, liked func(id string) bool) State {
	s := State{
		Playing: svc.IsPlaying(),
		Paused:  svc.State() == playback.StatePaused,
		Loading: svc.Loading(),
		Shuffle: svc.Shuffle(),
		Repeat:  svc.RepeatMode(),
		Volume:  svc.Volume(),
		Muted:   svc.Muted(),
	}
	track := svc.CurrentTrack()
	if track == nil {
		return s
	}
	s.Title = track.Title
	s.Artist = track.DisplayArtist()
	s.Position = svc.Position()
	s.Duration = svc.Duration()
	if liked != nil {
		s.Liked = liked(track.ID)
	}
	return s
}

// Render returns the bordered player bar for the given width.
func Render(s State, width int) string {
	inner := max(width-6, 0) // border + padding
	right := modes(s) + "  " + volume(s)

	var left string
	if s.Idle() {
		left = styles.T().S().Muted.Render("Nothing playing")
		return barStyle(width).Render(render.Row(left, right, inner))
	}

	status := icons.Play()
	if !s.Playing {
		status = icons.Pause()
	}
	if s.Loading {
		status = "…"
	}

	like := icons.NotFavorite()
	if s.Liked {
		like = styles.T().S().Liked.Render(icons.Favorite())
	}

	timeStr := fmt.Sprintf("%s / %s", render.Duration(s.Position), render.Duration(s.Duration))
	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(timeStr) + 2 + lipgloss.Width(right) + 2
	if like != "" {
		fixed += lipgloss.Width(like) + 1
	}

	// Give the text up to half of what is left, the bar gets the rest.
	avail := max(inner-fixed, 0)
	info := trackInfo(s.Title, s.Artist, max(avail/2, min(avail, 12)))
	barWidth := max(avail-lipgloss.Width(info)-2, 0)

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("  ")
	if like != "" {
		b.WriteString(like)
		b.WriteString(" ")
	}
	b.WriteString(info)
	if barWidth > 0 {
		b.WriteString("  ")
		b.WriteString(ProgressBar(s.Position, s.Duration, barWidth))
	}
	b.WriteString("  ")
	b.WriteString(styles.T().S().Muted.Render(timeStr))

	return barStyle(width).Render(render.Row(b.String(), right, inner))
}

func barStyle(width int) lipgloss.Style {
	return styles.PanelStyle(false).Padding(0, 2).Width(max(width-2, 0))
}

func trackInfo(title, artist string, maxWidth int) string {
	if title == "" {
		title = "Unknown Track"
	}
	st := styles.T().S()
	full := title
	if artist != "" {
		full = title + " · " + artist
	}
	if lipgloss.Width(full) <= maxWidth {
		if artist == "" {
			return st.Title.Render(title)
		}
		return st.Title.Render(title) + st.Muted.Render(" · "+artist)
	}
	return st.Title.Render(render.Truncate(title, maxWidth))
}

func modes(s State) string {
	st := styles.T().S()
	indicator := func(on bool, icon string) string {
		if on {
			return st.Active.Render(icon)
		}
		return st.Subtle.Render(icon)
	}

	repeatIcon := icons.RepeatAll()
	if s.Repeat == playback.RepeatOne {
		repeatIcon = icons.RepeatOne()
	}
	return indicator(s.Shuffle, icons.Shuffle()) + " " + indicator(s.Repeat != playback.RepeatNone, repeatIcon)
}

func volume(s State) string {
	icon := icons.Volume()
	if s.Muted {
		icon = icons.VolumeMute()
	}
	return styles.T().S().Muted.Render(fmt.Sprintf("%s %3d%%", icon, int(s.Volume*100+0.5)))
}
