package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mymusic/internal/audiocache"
	"github.com/llehouerou/mymusic/internal/config"
)

// CacheCmd groups the audio cache commands.
func CacheCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "cache",
		Short: "Manage the downloaded audio cache",
		SubCmds: []*cobra.Command{
			cacheStatsCmd(),
			cacheClearCmd(),
			cachePruneCmd(),
		},
	}.ToCobra()
}

func openCache() *audiocache.Cache {
	cfg, err := config.Load()
	exitOnError(err)
	c, err := audiocache.New(cfg.CacheDir)
	exitOnError(err)
	return c
}

func cacheStatsCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "stats",
		Short: "Show cache size",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			exitOnError(runCacheStats(openCache(), os.Stdout))
		},
	}.ToCobra()
}

func runCacheStats(c *audiocache.Cache, out io.Writer) error {
	st, err := c.Stats()
	if err != nil {
		return fmt.Errorf("read cache: %w", err)
	}
	fmt.Fprintf(out, "%s\n%s in %s\n",
		c.Dir(), humanize.IBytes(uint64(st.Bytes)), pluralFiles(st.Files)) //nolint:gosec // sizes are never negative
	return nil
}

func cacheClearCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "clear",
		Short: "Delete every cached file",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			c := openCache()
			exitOnError(c.Clear())
			fmt.Println("Audio cache cleared")
		},
	}.ToCobra()
}

type PruneParams struct {
	Days int `long:"days" optional:"true" default:"30" help:"Remove files not played for this many days."`
}

func cachePruneCmd() *cobra.Command {
	return boa.CmdT[PruneParams]{
		Use:         "prune",
		Short:       "Delete cached files not played recently",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *PruneParams, cmd *cobra.Command, args []string) {
			exitOnError(runCachePrune(openCache(), time.Duration(params.Days)*24*time.Hour, os.Stdout))
		},
	}.ToCobra()
}

func runCachePrune(c *audiocache.Cache, olderThan time.Duration, out io.Writer) error {
	n, err := c.Prune(olderThan)
	if err != nil {
		return fmt.Errorf("prune cache: %w", err)
	}
	fmt.Fprintf(out, "Removed %s\n", pluralFiles(n))
	return nil
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return humanize.Comma(int64(n)) + " files"
}
