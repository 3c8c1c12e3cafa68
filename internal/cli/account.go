package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/dustin/go-humanize"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llehouerou/mymusic/internal/api"
	"github.com/llehouerou/mymusic/internal/auth"
	"github.com/llehouerou/mymusic/internal/state"
)

type LoginParams struct {
	Email    string `pos:"true" required:"true" help:"Account email."`
	Password string `short:"p" optional:"true" help:"Password; prompted for when omitted."`
}

// LoginCmd signs in and stores the credentials for the player.
func LoginCmd() *cobra.Command {
	return boa.CmdT[LoginParams]{
		Use:         "login",
		Short:       "Log in to the music server",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *LoginParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)

			password := params.Password
			if password == "" {
				password, err = readPassword(os.Stdin, os.Stderr)
				exitOnError(err)
			}
			exitOnError(runLogin(cmd.Context(), e, params.Email, password, os.Stdout))
		},
	}.ToCobra()
}

func readPassword(in *os.File, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	if term.IsTerminal(int(in.Fd())) {
		b, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(prompt)
		return string(b), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runLogin(ctx context.Context, e *env, email, password string, out io.Writer) error {
	u, err := e.client.Login(ctx, email, password)
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Message != "" {
			return errors.New(se.Message)
		}
		return fmt.Errorf("log in: %w", err)
	}
	info := &auth.UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		Token:     u.Token,
	}
	if err := e.store.Save(info); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	fmt.Fprintf(out, "Logged in as %s\n", info.Username)
	return nil
}

// SessionDeleter removes a saved playback session.
type SessionDeleter interface {
	DeleteSession(ctx context.Context, key string) error
}

// LogoutCmd deletes the stored credentials and the user's saved session.
func LogoutCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "logout",
		Short: "Log out and forget the saved playback session",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)
			mgr, err := state.Open()
			exitOnError(err)
			defer mgr.Close()
			exitOnError(runLogout(cmd.Context(), e, mgr, os.Stdout))
		},
	}.ToCobra()
}

func runLogout(ctx context.Context, e *env, sessions SessionDeleter, out io.Writer) error {
	if e.user == nil {
		fmt.Fprintln(out, "Not logged in")
		return nil
	}
	if err := sessions.DeleteSession(ctx, auth.SessionKey(e.user)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := e.store.Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	fmt.Fprintf(out, "Logged out %s\n", e.user.Username)
	return nil
}

// WhoamiCmd prints the stored user.
func WhoamiCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			e, err := loadEnv()
			exitOnError(err)
			runWhoami(e, os.Stdout)
		},
	}.ToCobra()
}

func runWhoami(e *env, out io.Writer) {
	u := e.user
	if u == nil || u.Token == "" {
		fmt.Fprintln(out, "guest (not logged in)")
		return
	}
	fmt.Fprintf(out, "%s <%s>\n", u.Username, u.Email)
	fmt.Fprintf(out, "id:      %s\n", u.UserID())
	if u.Role != "" {
		fmt.Fprintf(out, "role:    %s\n", u.Role)
	}
	fmt.Fprintf(out, "session: %s\n", auth.SessionKey(u))
	fmt.Fprintf(out, "token:   %s\n", tokenStatus(u.Token, e.now()))
}

func tokenStatus(token string, now time.Time) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "opaque"
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "no expiry"
	}
	if !now.Before(exp.Time) {
		return "expired " + humanize.RelTime(exp.Time, now, "ago", "from now")
	}
	return "expires " + humanize.RelTime(exp.Time, now, "ago", "from now")
}
