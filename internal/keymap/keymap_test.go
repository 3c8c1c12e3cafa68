//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	})

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_KeysForDeduplicates(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionSelect, []string{"enter"}, "Play", "list"},
		{ActionSelect, []string{"enter", "o"}, "Open", "list"},
	})

	got := r.KeysFor(ActionSelect)
	if !slices.Equal(got, []string{"enter", "o"}) {
		t.Errorf("KeysFor() = %v, want [enter o]", got)
	}
	if keys := r.KeysFor(ActionQuit); len(keys) != 0 {
		t.Errorf("KeysFor(unbound) = %v, want empty", keys)
	}
}

func TestDefault_NoConflicts(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}

func TestDefault_PlayerKeys(t *testing.T) {
	r := Default()
	tests := map[string]Action{
		" ": ActionPlayPause,
		"n": ActionNextTrack,
		"p": ActionPrevTrack,
		"r": ActionCycleRepeat,
		"S": ActionToggleShuffle,
		"L": ActionLikePlaying,
		"/": ActionSearch,
	}
	for key, want := range tests {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestByContext(t *testing.T) {
	for _, b := range ByContext("playback") {
		if b.Context != "playback" {
			t.Errorf("ByContext(playback) returned %q binding", b.Context)
		}
	}
	if len(ByContext("playback")) == 0 {
		t.Error("ByContext(playback) returned nothing")
	}
}
