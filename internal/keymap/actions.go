// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionSearch Action = "search"
	ActionBack   Action = "back"
	ActionReload Action = "reload"
	ActionHelp   Action = "help"

	// View switching
	ActionViewSongs     Action = "view_songs"
	ActionViewFavorites Action = "view_favorites"
	ActionViewPlaylists Action = "view_playlists"
	ActionViewQueue     Action = "view_queue"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionStop          Action = "stop"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"
	ActionLikePlaying   Action = "like_playing"

	// List actions
	ActionMoveUp       Action = "move_up"
	ActionMoveDown     Action = "move_down"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"
	ActionPageUp       Action = "page_up"
	ActionPageDown     Action = "page_down"
	ActionSelect       Action = "select"
	ActionLikeSelected Action = "like_selected"
)
