package playlist

import "testing"

func TestPlaylist_Move(t *testing.T) {
	p := NewPlaylist()
	p.Add(tracks("a", "b", "c")...)

	if !p.Move(2, 0) {
		t.Fatal("Move(2, 0) = false")
	}
	got := ""
	for _, tr := range p.Tracks() {
		got += tr.AudioSrc
	}
	if got != "cab" {
		t.Errorf("order = %q, want cab", got)
	}
	if p.Move(0, 5) {
		t.Error("Move(0, 5) = true, want false")
	}
}

func TestPlaylist_IndexOfSource(t *testing.T) {
	p := NewPlaylist()
	p.Add(tracks("a", "b")...)

	if got := p.IndexOfSource("b"); got != 1 {
		t.Errorf("IndexOfSource(b) = %d, want 1", got)
	}
	if got := p.IndexOfSource("x"); got != -1 {
		t.Errorf("IndexOfSource(x) = %d, want -1", got)
	}
}

func TestTrack_DisplayArtist(t *testing.T) {
	if got := (Track{ArtistName: "n"}).DisplayArtist(); got != "n" {
		t.Errorf("DisplayArtist() = %q, want n", got)
	}
	if got := (Track{ArtistName: "n", ArtistData: "d"}).DisplayArtist(); got != "d" {
		t.Errorf("DisplayArtist() = %q, want d", got)
	}
}
