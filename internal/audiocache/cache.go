// Package audiocache downloads remote audio files to disk so the player can
// decode and seek them locally.
package audiocache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/llehouerou/mymusic/internal/player"
)

const (
	cacheDirName   = "mymusic/audio"
	defaultTimeout = 2 * time.Minute
	tmpSuffix      = ".part"
)

// Cache is an on-disk cache of audio files keyed by source URL.
type Cache struct {
	dir        string
	httpClient *http.Client
	logger     *slog.Logger
	group      singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithHTTPClient replaces the download client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Cache) { c.httpClient = hc }
}

// WithLogger sets the logger used for failed preloads.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// New creates a cache in dir, or in the XDG cache directory when dir is
// empty.
func New(dir string, opts ...Option) (*Cache, error) {
	if dir == "" {
		marker, err := xdg.CacheFile(filepath.Join(cacheDirName, ".keep"))
		if err != nil {
			return nil, fmt.Errorf("get cache dir: %w", err)
		}
		dir = filepath.Dir(marker)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	c := &Cache{
		dir:        dir,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// cacheKey derives a stable file name for src.
func cacheKey(src string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(src)).String() + player.Extension(src)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Path returns where src is (or would be) cached.
func (c *Cache) Path(src string) string {
	return filepath.Join(c.dir, cacheKey(src))
}

// Has reports whether src is already on disk.
func (c *Cache) Has(src string) bool {
	_, err := os.Stat(c.Path(src))
	return err == nil
}

// Open returns a local path for src, downloading it first when needed.
// Local sources are returned unchanged. Concurrent calls for the same
// source share one download.
func (c *Cache) Open(ctx context.Context, src string) (string, error) {
	if !isRemote(src) {
		return src, nil
	}
	path := c.Path(src)
	if _, err := os.Stat(path); err == nil {
		now := time.Now()
		_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort
		return path, nil
	}

	ch := c.group.DoChan(src, func() (any, error) {
		// Detached so that one caller cancelling does not abort the
		// download for the others; the client timeout still bounds it.
		return path, c.download(context.WithoutCancel(ctx), src, path)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return path, nil
	}
}

// Preload starts fetching src in the background.
func (c *Cache) Preload(src string) {
	if !isRemote(src) || c.Has(src) {
		return
	}
	go func() {
		if _, err := c.Open(context.Background(), src); err != nil {
			c.logger.Debug("preload failed", "src", src, "error", err)
		}
	}()
}

func (c *Cache) download(ctx context.Context, src, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	f, err := os.CreateTemp(c.dir, filepath.Base(path)+"*"+tmpSuffix)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	_, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("download %s: %w", src, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store download: %w", err)
	}
	return nil
}

// Stats describes the cache contents.
type Stats struct {
	Files int
	Bytes int64
}

// Stats walks the cache directory. Partial downloads are not counted.
func (c *Cache) Stats() (Stats, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return Stats{}, fmt.Errorf("read cache dir: %w", err)
	}
	var st Stats
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), tmpSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		st.Files++
		st.Bytes += info.Size()
	}
	return st, nil
}

// Clear removes every cached file.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("read cache dir: %w", err)
	}
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Prune removes files not used since maxAge ago.
func (c *Cache) Prune(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("read cache dir: %w", err)
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(c.dir, entry.Name())) == nil {
				removed++
			}
		}
	}
	return removed, nil
}
