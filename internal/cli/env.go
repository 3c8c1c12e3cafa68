// Package cli implements the mymusic command line: the TUI launcher and
// the account, catalog, session and cache subcommands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"golang.org/x/term"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/auth"
	"github.com/llehouerou/mymusic/internal/config"
	"github.com/llehouerou/mymusic/internal/logging"
)

// env is what every subcommand needs: configuration, stored credentials
// and an API client carrying the token.
type env struct {
	cfg    *config.Config
	store  *auth.Store
	user   *auth.UserInfo
	client *api.Client
	logger *slog.Logger
	now    func() time.Time
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	store, err := auth.NewStore()
	if err != nil {
		return nil, fmt.Errorf("credentials path: %w", err)
	}
	return newEnv(cfg, store, logging.Discard())
}

func newEnv(cfg *config.Config, store *auth.Store, logger *slog.Logger) (*env, error) {
	user, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	e := &env{cfg: cfg, store: store, user: user, logger: logger, now: time.Now}

	opts := []api.Option{api.WithTimeout(cfg.GetRequestTimeout())}
	if user.LoggedIn(e.now()) {
		opts = append(opts, api.WithToken(user.Token))
	}
	e.client = api.New(cfg.ServerURL, opts...)
	return e, nil
}

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 120
}
