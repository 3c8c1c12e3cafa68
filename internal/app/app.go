package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/auth"
	"github.com/llehouerou/mymusic/internal/keymap"
	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/ui/helpbindings"
	"github.com/llehouerou/mymusic/internal/ui/list"
	"github.com/llehouerou/mymusic/internal/ui/queuepanel"
	"github.com/llehouerou/mymusic/internal/ui/songlist"
)

// View identifies the browse panel on screen.
type View string

const (
	ViewSongs         View = "songs"
	ViewFavorites     View = "favorites"
	ViewPlaylists     View = "playlists"
	ViewPlaylistSongs View = "playlist"
	ViewSearch        View = "search"
	ViewQueue         View = "queue"
)

// WindowTitleIdle is the terminal title while nothing plays.
const WindowTitleIdle = "MyMusic Player"

const (
	noticeTimeout = 3 * time.Second
	seekStep      = 5 * time.Second
	volumeStep    = 0.05
)

// Deps are the services the model drives.
type Deps struct {
	Service   playback.Service
	Catalog   Catalog
	Favorites Favorites
	Sessions  Sessions  // may be nil
	Announcer Announcer // may be nil
	User      *auth.UserInfo
	Logger    *slog.Logger
	Now       func() time.Time

	// Credentials delivers the stored user after every change, nil once
	// logged out. May be nil.
	Credentials <-chan *auth.UserInfo
}

// Model is the root bubbletea model.
type Model struct {
	deps Deps
	sub  *playback.Subscription
	keys *keymap.Resolver

	view View
	user *auth.UserInfo

	songs         songlist.Model
	favorites     songlist.Model
	playlistSongs songlist.Model
	searchSongs   songlist.Model
	playlists     list.Model[api.Playlist]
	queue         queuepanel.Model

	search    textinput.Model
	searching bool

	help     helpbindings.Model
	showHelp bool

	notice        string
	noticeIsError bool
	noticeVersion int

	width, height int
}

// New creates the model and subscribes to the playback service.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Search songs and artists"
	ti.Prompt = "/ "
	ti.CharLimit = 100

	m := Model{
		deps:          deps,
		sub:           deps.Service.Subscribe(),
		keys:          keymap.Default(),
		view:          ViewSongs,
		user:          deps.User,
		songs:         songlist.New("All Songs", "No songs"),
		favorites:     songlist.New("Favorites", "No favorites yet"),
		playlistSongs: songlist.New("Playlist", "This playlist is empty"),
		searchSongs:   songlist.New("Search", "Type / to search"),
		playlists:     list.New[api.Playlist](),
		queue:         queuepanel.New(),
		search:        ti,
		help:          helpbindings.New(keymap.All),
	}
	m.songs.SetFocused(true)
	m.songs.SetLoading(true)
	return m
}

// Init loads the catalog and starts listening to the service.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.WatchServiceEvents(),
		LoadSongsCmd(m.deps.Catalog),
		SyncFavoritesCmd(m.deps.Favorites, m.loggedIn()),
		tea.SetWindowTitle(m.windowTitle()),
		WatchCredentialsCmd(m.deps.Credentials),
	}
	if m.deps.Service.IsPlaying() {
		cmds = append(cmds, TickCmd())
	}
	return tea.Batch(cmds...)
}

// CurrentView returns the active browse view.
func (m Model) CurrentView() View { return m.view }

// Notice returns the status line text.
func (m Model) Notice() string { return m.notice }

func (m Model) loggedIn() bool {
	return m.user.LoggedIn(m.deps.Now())
}

func (m Model) windowTitle() string {
	t := m.deps.Service.CurrentTrack()
	if t == nil || !m.deps.Service.State().IsActive() {
		return WindowTitleIdle
	}
	if artist := t.DisplayArtist(); artist != "" {
		return t.Title + " - " + artist
	}
	return t.Title
}

// activeSongs returns the song list of the current view, nil for the
// playlist index and the queue.
func (m *Model) activeSongs() *songlist.Model {
	switch m.view {
	case ViewSongs:
		return &m.songs
	case ViewFavorites:
		return &m.favorites
	case ViewPlaylistSongs:
		return &m.playlistSongs
	case ViewSearch:
		return &m.searchSongs
	case ViewPlaylists, ViewQueue:
		return nil
	}
	return nil
}

func (m *Model) setView(v View) {
	m.view = v
	for _, l := range []*songlist.Model{&m.songs, &m.favorites, &m.playlistSongs, &m.searchSongs} {
		l.SetFocused(false)
	}
	m.playlists.SetFocused(v == ViewPlaylists)
	m.queue.SetFocused(v == ViewQueue)
	if v == ViewQueue {
		m.queue.Sync(m.deps.Service)
	}
	if l := m.activeSongs(); l != nil {
		l.SetFocused(!m.searching)
	}
}
