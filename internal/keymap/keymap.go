package keymap

// Binding maps keys to an action, with a description for help output.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "list"
}

// All contains every key binding of the player.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionBack, []string{"esc", "backspace"}, "Back", "global"},
	{ActionReload, []string{"ctrl+r"}, "Reload view", "global"},
	{ActionViewSongs, []string{"1", "F1"}, "All songs", "global"},
	{ActionViewFavorites, []string{"2", "F2"}, "Favorites", "global"},
	{ActionViewPlaylists, []string{"3", "F3"}, "Playlists", "global"},
	{ActionViewQueue, []string{"4", "F4"}, "Playing queue", "global"},
	{ActionHelp, []string{"?"}, "Key bindings", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right", "shift+right"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left", "shift+left"}, "Seek -5s", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat mode", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute", "playback"},
	{ActionLikePlaying, []string{"L"}, "Like playing song", "playback"},

	// Lists
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "list"},
	{ActionPageUp, []string{"ctrl+u"}, "Page up", "list"},
	{ActionPageDown, []string{"ctrl+d"}, "Page down", "list"},
	{ActionSelect, []string{"enter"}, "Play / open", "list"},
	{ActionLikeSelected, []string{"l"}, "Like selected song", "list"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}
