package api

import (
	"context"
	"net/http"
	"net/url"
)

// Songs lists every song.
func (c *Client) Songs(ctx context.Context) ([]Song, error) {
	var songs []Song
	if err := c.do(ctx, http.MethodGet, "/api/songs", nil, nil, &songs, false); err != nil {
		return nil, err
	}
	return songs, nil
}

// Song fetches one song.
func (c *Client) Song(ctx context.Context, id string) (*Song, error) {
	var song Song
	if err := c.do(ctx, http.MethodGet, "/api/songs/"+url.PathEscape(id), nil, nil, &song, false); err != nil {
		return nil, err
	}
	return &song, nil
}

// Favorites lists the songs the signed-in user likes.
func (c *Client) Favorites(ctx context.Context) ([]Song, error) {
	var songs []Song
	if err := c.do(ctx, http.MethodGet, "/api/songs/favorites", nil, nil, &songs, true); err != nil {
		return nil, err
	}
	return songs, nil
}

// ToggleLike likes or unlikes a song and returns the server's message.
func (c *Client) ToggleLike(ctx context.Context, id string) (string, error) {
	var res LikeResult
	if err := c.do(ctx, http.MethodPut, "/api/songs/"+url.PathEscape(id)+"/like", nil, nil, &res, true); err != nil {
		return "", err
	}
	return res.Message, nil
}

// Search finds artists and songs matching q. An empty query returns
// nothing without a request.
func (c *Client) Search(ctx context.Context, q string) (*SearchResult, error) {
	if q == "" {
		return &SearchResult{}, nil
	}
	var res SearchResult
	if err := c.do(ctx, http.MethodGet, "/api/search", url.Values{"q": {q}}, nil, &res, false); err != nil {
		return nil, err
	}
	return &res, nil
}
