package audiocache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(t.TempDir())
	require.NoError(t, err)
	return c
}

func TestCache_OpenLocalPassthrough(t *testing.T) {
	c := newCache(t)
	path, err := c.Open(context.Background(), "/music/a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "/music/a.mp3", path)
}

func TestCache_OpenDownloadsOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	c := newCache(t)
	src := srv.URL + "/uploads/Song.MP3"

	path, err := c.Open(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, ".mp3", filepath.Ext(path))
	assert.True(t, strings.HasPrefix(path, c.Dir()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	again, err := c.Open(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), hits.Load())
	assert.True(t, c.Has(src))
}

func TestCache_ConcurrentOpenSharesDownload(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	c := newCache(t)
	src := srv.URL + "/a.flac"

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Open(context.Background(), src)
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestCache_OpenHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := newCache(t)
	src := srv.URL + "/missing.mp3"
	_, err := c.Open(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
	assert.False(t, c.Has(src))

	st, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Files)
}

func TestCache_OpenCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Open(ctx, srv.URL+"/slow.mp3")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCache_PreloadAndStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("12345"))
	}))
	defer srv.Close()

	c := newCache(t)
	src := srv.URL + "/next.wav"
	c.Preload(src)

	require.Eventually(t, func() bool { return c.Has(src) }, 5*time.Second, 10*time.Millisecond)

	st, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{Files: 1, Bytes: 5}, st)

	require.NoError(t, c.Clear())
	assert.False(t, c.Has(src))
}

func TestCache_Prune(t *testing.T) {
	c := newCache(t)
	oldPath := filepath.Join(c.Dir(), "old.mp3")
	newPath := filepath.Join(c.Dir(), "new.mp3")
	require.NoError(t, os.WriteFile(oldPath, []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(newPath, []byte("b"), 0o600))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	removed, err := c.Prune(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, newPath)
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("http://x/a.mp3")
	assert.Equal(t, a, cacheKey("http://x/a.mp3"))
	assert.NotEqual(t, a, cacheKey("http://x/b.mp3"))
	assert.True(t, strings.HasSuffix(a, ".mp3"))
}
