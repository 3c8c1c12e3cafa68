package cli

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mymusic/internal/app"
	"github.com/llehouerou/mymusic/internal/audiocache"
	"github.com/llehouerou/mymusic/internal/auth"
	"github.com/llehouerou/mymusic/internal/config"
	"github.com/llehouerou/mymusic/internal/icons"
	"github.com/llehouerou/mymusic/internal/likes"
	"github.com/llehouerou/mymusic/internal/logging"
	"github.com/llehouerou/mymusic/internal/mpris"
	"github.com/llehouerou/mymusic/internal/notify"
	"github.com/llehouerou/mymusic/internal/playback"
	"github.com/llehouerou/mymusic/internal/player"
	"github.com/llehouerou/mymusic/internal/playlist"
	"github.com/llehouerou/mymusic/internal/resume"
	"github.com/llehouerou/mymusic/internal/state"
	"github.com/llehouerou/mymusic/internal/stderr"
)

// RunTUI starts the interactive player.
func RunTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath, err := logging.DefaultPath()
	if err != nil {
		return err
	}
	logger, logFile, err := logging.Setup(logPath, cfg.GetLogLevel())
	if err != nil {
		return err
	}
	defer logFile.Close()

	// ALSA and friends write to fd 2, which would garble the screen.
	if err := stderr.Start(logger); err != nil {
		logger.Warn("cannot capture stderr", "error", err)
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	store, err := auth.NewStore()
	if err != nil {
		return fmt.Errorf("credentials path: %w", err)
	}
	e, err := newEnv(cfg, store, logger)
	if err != nil {
		return err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	cache, err := audiocache.New(cfg.CacheDir, audiocache.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("open audio cache: %w", err)
	}

	pc := cfg.GetPlayerConfig()
	svc := playback.New(
		player.New(cache),
		playlist.NewQueue(),
		playback.WithBaseURL(cfg.ServerURL),
		playback.WithPreloader(cache),
		playback.WithLogger(logger),
		playback.WithPreviousThreshold(pc.PreviousThreshold),
	)
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	key := auth.SessionKey(e.user)
	restoreOpts := resume.Options{
		Autoplay:      pc.ResumePlayback,
		DefaultVolume: pc.DefaultVolume,
		Logger:        logger,
	}
	restored, err := resume.Restore(ctx, svc, stateMgr, key, restoreOpts)
	if err != nil {
		logger.Warn("session not restored", "key", key, "error", err)
	}
	logger.Info("starting", "server", cfg.ServerURL, "session", key, "restored", restored)

	rec := resume.NewRecorder(svc, stateMgr, key,
		resume.WithInterval(pc.SnapshotInterval),
		resume.WithLogger(logger),
		resume.WithRestoreOptions(restoreOpts),
	)
	rec.Start()
	defer func() {
		if err := rec.Close(); err != nil {
			logger.Error("final session save failed", "error", err)
		}
	}()

	if adapter, err := mpris.New(svc, cfg.ServerURL); err != nil {
		logger.Warn("media session unavailable", "error", err)
	} else {
		defer adapter.Close()
	}

	deps := app.Deps{
		Service:     svc,
		Catalog:     e.client,
		Favorites:   likes.New(e.client),
		Sessions:    rec,
		User:        e.user,
		Logger:      logger,
		Credentials: watchCredentials(ctx, store, logger),
	}
	if cfg.Notifications {
		deps.Announcer = newAnnouncer(logger)
	}

	_, err = tea.NewProgram(app.New(deps), tea.WithAltScreen()).Run()
	return err
}

func newAnnouncer(logger *slog.Logger) *notify.NowPlaying {
	n, err := notify.New()
	if err != nil {
		logger.Warn("desktop notifications unavailable", "error", err)
		n = notify.Disabled()
	}
	return notify.NewNowPlaying(n)
}

// watchCredentials forwards every change of the credentials file.
func watchCredentials(ctx context.Context, store *auth.Store, logger *slog.Logger) <-chan *auth.UserInfo {
	ch := make(chan *auth.UserInfo, 1)
	go func() {
		defer close(ch)
		err := store.Watch(ctx, func(u *auth.UserInfo) {
			select {
			case ch <- u:
			case <-ctx.Done():
			}
		})
		if err != nil && ctx.Err() == nil {
			logger.Warn("credentials watch stopped", "error", err)
		}
	}()
	return ch
}
