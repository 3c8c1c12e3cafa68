package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/errmsg"
	"github.com/llehouerou/mymusic/internal/likes"
)

// SongsCmd lists every song on the server.
func SongsCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "songs",
		Short: "List all songs",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)
			songs, err := e.client.Songs(cmd.Context())
			exitOnError(apiErr(errmsg.OpSongsLoad, err))
			writeSongs(os.Stdout, songs, likedSet(cmd.Context(), e))
		},
	}.ToCobra()
}

// FavoritesCmd lists the user's liked songs.
func FavoritesCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:     "favorites",
		Aliases: []string{"favs"},
		Short:   "List liked songs",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)
			songs, err := e.client.Favorites(cmd.Context())
			exitOnError(apiErr(errmsg.OpFavoritesLoad, err))
			all := make(map[string]bool, len(songs))
			for _, s := range songs {
				all[s.ID] = true
			}
			writeSongs(os.Stdout, songs, func(id string) bool { return all[id] })
		},
	}.ToCobra()
}

type LikeParams struct {
	SongID string `pos:"true" required:"true" help:"Song id, as shown by 'mymusic songs'."`
}

// LikeCmd toggles the like of a song.
func LikeCmd() *cobra.Command {
	return boa.CmdT[LikeParams]{
		Use:         "like",
		Short:       "Like or unlike a song",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *LikeParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)
			exitOnError(runLike(cmd.Context(), e, params.SongID, os.Stdout))
		},
	}.ToCobra()
}

func runLike(ctx context.Context, e *env, id string, out io.Writer) error {
	if !e.user.LoggedIn(e.now()) {
		if e.user.TokenExpired(e.now()) {
			return errors.New(errmsg.MsgSessionExpired)
		}
		return errors.New(errmsg.MsgLoginToLike)
	}
	set := likes.New(e.client)
	liked, message, err := set.Toggle(ctx, id)
	if err != nil {
		return errors.New(errmsg.Like(err))
	}
	if message == "" {
		message = "Removed from favorites"
		if liked {
			message = "Added to favorites"
		}
	}
	fmt.Fprintln(out, message)
	return nil
}

type PlaylistsParams struct {
	ID string `pos:"true" optional:"true" help:"Show the songs of this playlist."`
}

// PlaylistsCmd lists playlists, or the songs of one.
func PlaylistsCmd() *cobra.Command {
	return boa.CmdT[PlaylistsParams]{
		Use:         "playlists",
		Short:       "List playlists or the songs of one playlist",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *PlaylistsParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)
			exitOnError(runPlaylists(cmd.Context(), e, params.ID, os.Stdout))
		},
	}.ToCobra()
}

func runPlaylists(ctx context.Context, e *env, id string, out io.Writer) error {
	if id != "" {
		pl, err := e.client.Playlist(ctx, id)
		if err != nil {
			return apiErr(errmsg.OpPlaylistLoad, err)
		}
		fmt.Fprintf(out, "%s\n", text.Bold.Sprint(pl.Title))
		if pl.Description != "" {
			fmt.Fprintln(out, pl.Description)
		}
		writeSongs(out, pl.Songs, likedSet(ctx, e))
		return nil
	}

	pls, err := e.client.Playlists(ctx)
	if err != nil {
		return apiErr(errmsg.OpPlaylistsLoad, err)
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Title", "Songs"})
	for _, pl := range pls {
		t.AppendRow(table.Row{pl.ID, pl.Title, len(pl.Songs)})
	}
	t.Render()
	return nil
}

type SearchParams struct {
	Query string `pos:"true" required:"true" help:"Text to search for."`
}

// SearchCmd searches songs and artists.
func SearchCmd() *cobra.Command {
	return boa.CmdT[SearchParams]{
		Use:         "search",
		Short:       "Search songs and artists",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *SearchParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)
			exitOnError(runSearch(cmd.Context(), e, params.Query, os.Stdout))
		},
	}.ToCobra()
}

func runSearch(ctx context.Context, e *env, q string, out io.Writer) error {
	res, err := e.client.Search(ctx, q)
	if err != nil {
		return apiErr(errmsg.OpSearch, err)
	}
	if len(res.Artists) > 0 {
		t := newTable(out)
		t.AppendHeader(table.Row{"Artist", "Monthly listeners"})
		for _, a := range res.Artists {
			t.AppendRow(table.Row{a.Name, a.MonthlyListeners})
		}
		t.Render()
	}
	if len(res.Songs) == 0 && len(res.Artists) == 0 {
		fmt.Fprintf(out, "No results for %q\n", q)
		return nil
	}
	writeSongs(out, res.Songs, likedSet(ctx, e))
	return nil
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(termWidth(out))
	return t
}

func writeSongs(out io.Writer, songs []api.Song, liked func(string) bool) {
	if len(songs) == 0 {
		fmt.Fprintln(out, "No songs")
		return
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"", "ID", "Title", "Artist", "Plays"})
	for _, s := range songs {
		heart := ""
		if liked(s.ID) {
			heart = text.FgGreen.Sprint("♥")
		}
		t.AppendRow(table.Row{heart, s.ID, s.Title, s.ArtistName, humanize.Comma(int64(s.Plays))})
	}
	t.Render()
}

// likedSet fetches the user's favorites for the ♥ column. Guests and
// failures get an empty set.
func likedSet(ctx context.Context, e *env) func(string) bool {
	set := likes.New(e.client)
	if e.user.LoggedIn(e.now()) {
		if err := set.Load(ctx); err != nil {
			e.logger.Debug("favorites unavailable", "error", err)
		}
	}
	return set.Has
}

func apiErr(op errmsg.Op, err error) error {
	if err == nil {
		return nil
	}
	return errors.New(errmsg.API(op, err))
}
