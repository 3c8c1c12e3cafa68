package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mymusic/internal/auth"
	"github.com/llehouerou/mymusic/internal/resume"
	"github.com/llehouerou/mymusic/internal/state"
)

// SessionStore is the part of the state database the session commands use.
type SessionStore interface {
	GetSession(ctx context.Context, key string) (*state.Session, error)
	DeleteSession(ctx context.Context, key string) error
	ListSessions(ctx context.Context) ([]state.SessionSummary, error)
}

// SessionCmd groups the saved-session commands.
func SessionCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "session",
		Short: "Inspect or clear saved playback sessions",
		SubCmds: []*cobra.Command{
			sessionShowCmd(),
			sessionListCmd(),
			sessionClearCmd(),
		},
	}.ToCobra()
}

func withSessions(run func(e *env, store SessionStore) error) {
	e, err := loadEnv()
	exitOnError(err)
	mgr, err := state.Open()
	exitOnError(err)
	defer mgr.Close()
	exitOnError(run(e, mgr))
}

func sessionShowCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "show",
		Short: "Show the session of the current user",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			withSessions(func(e *env, store SessionStore) error {
				return runSessionShow(cmd.Context(), store, auth.SessionKey(e.user), time.Now(), os.Stdout)
			})
		},
	}.ToCobra()
}

func runSessionShow(ctx context.Context, store SessionStore, key string, now time.Time, out io.Writer) error {
	saved, err := store.GetSession(ctx, key)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if saved == nil {
		fmt.Fprintf(out, "No saved session for %s\n", key)
		return nil
	}
	snap, err := resume.FromSession(saved)
	if err != nil {
		fmt.Fprintf(out, "Saved session for %s is unusable: %v\n", key, err)
		return nil
	}

	status := "paused"
	if snap.Playing {
		status = "playing"
	}
	fmt.Fprintf(out, "Session %s, saved %s\n", key, humanize.RelTime(saved.SavedAt, now, "ago", "from now"))
	fmt.Fprintf(out, "%s at %s, shuffle %v, repeat %s, volume %d%%\n",
		status, snap.Position.Truncate(time.Second), snap.Shuffle, snap.Repeat, int(snap.Volume*100+0.5))

	t := newTable(out)
	t.AppendHeader(table.Row{"", "#", "Title", "Artist"})
	for i, tr := range snap.Tracks {
		marker := ""
		if i == snap.Index {
			marker = "▶"
		}
		t.AppendRow(table.Row{marker, i + 1, tr.Title, tr.DisplayArtist()})
	}
	t.Render()
	return nil
}

func sessionListCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List saved sessions of every user",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			withSessions(func(_ *env, store SessionStore) error {
				return runSessionList(cmd.Context(), store, time.Now(), os.Stdout)
			})
		},
	}.ToCobra()
}

func runSessionList(ctx context.Context, store SessionStore, now time.Time, out io.Writer) error {
	sessions, err := store.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No saved sessions")
		return nil
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"Key", "Tracks", "Saved"})
	for _, s := range sessions {
		t.AppendRow(table.Row{s.UserKey, s.TrackCount, humanize.RelTime(s.SavedAt, now, "ago", "from now")})
	}
	t.Render()
	return nil
}

func sessionClearCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "clear",
		Short: "Delete the session of the current user",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			withSessions(func(e *env, store SessionStore) error {
				key := auth.SessionKey(e.user)
				if err := store.DeleteSession(cmd.Context(), key); err != nil {
					return fmt.Errorf("clear session: %w", err)
				}
				fmt.Printf("Cleared session %s\n", key)
				return nil
			})
		},
	}.ToCobra()
}
