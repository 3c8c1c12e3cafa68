package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mymusic/internal/cli"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "mymusic",
		Short:   "Terminal player for the MyMusic server",
		Version: appVersion(),
		RunFunc: func(_ *boa.NoParams, _ *cobra.Command, _ []string) {
			exitOnError(cli.RunTUI())
		},
		SubCmds: []*cobra.Command{
			cli.LoginCmd(),
			cli.LogoutCmd(),
			cli.WhoamiCmd(),
			cli.SongsCmd(),
			cli.FavoritesCmd(),
			cli.LikeCmd(),
			cli.PlaylistsCmd(),
			cli.SearchCmd(),
			cli.SessionCmd(),
			cli.CacheCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "mymusic: %v\n", err)
	os.Exit(1)
}
