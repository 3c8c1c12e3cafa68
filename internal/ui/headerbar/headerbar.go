// Package headerbar renders the view tabs and the signed-in user.
package headerbar

import (
	"strings"

	"github.com/llehouerou/mymusic/internal/ui/render"
	"github.com/llehouerou/mymusic/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

type tab struct {
	key  string
	name string
	view string
}

var tabs = []tab{
	{"1", "Songs", "songs"},
	{"2", "Favorites", "favorites"},
	{"3", "Playlists", "playlists"},
	{"4", "Queue", "queue"},
	{"/", "Search", "search"},
}

// Render returns the header for the active view. user is the signed-in
// username, empty for a guest.
func Render(active, user string, width int) string {
	if width < 20 {
		return ""
	}
	st := styles.T().S()

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.view == active {
			parts = append(parts, st.Active.Render(t.key+" "+t.name))
			continue
		}
		parts = append(parts, st.Muted.Render(t.key)+" "+st.Base.Render(t.name))
	}
	left := strings.Join(parts, st.Subtle.Render(" │ "))

	who := "guest"
	if user != "" {
		who = user
	}
	return render.Row(" "+left, st.Muted.Render(who)+" ", width)
}
