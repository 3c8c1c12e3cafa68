package api

import (
	"context"
	"net/http"
	"net/url"
)

// Playlists lists playlists without their songs.
func (c *Client) Playlists(ctx context.Context) ([]Playlist, error) {
	var pls []Playlist
	if err := c.do(ctx, http.MethodGet, "/api/playlists", nil, nil, &pls, false); err != nil {
		return nil, err
	}
	return pls, nil
}

// PlaylistSections lists playlists with their songs.
func (c *Client) PlaylistSections(ctx context.Context) ([]Playlist, error) {
	var pls []Playlist
	if err := c.do(ctx, http.MethodGet, "/api/playlists/sections", nil, nil, &pls, false); err != nil {
		return nil, err
	}
	return pls, nil
}

// Playlist fetches one playlist with its songs.
func (c *Client) Playlist(ctx context.Context, id string) (*Playlist, error) {
	var pl Playlist
	if err := c.do(ctx, http.MethodGet, "/api/playlists/"+url.PathEscape(id), nil, nil, &pl, false); err != nil {
		return nil, err
	}
	return &pl, nil
}

// Artists lists artists.
func (c *Client) Artists(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	if err := c.do(ctx, http.MethodGet, "/api/artists", nil, nil, &artists, false); err != nil {
		return nil, err
	}
	return artists, nil
}

// Artist fetches an artist with their songs.
func (c *Client) Artist(ctx context.Context, id string) (*Artist, error) {
	var a Artist
	if err := c.do(ctx, http.MethodGet, "/api/artists/"+url.PathEscape(id), nil, nil, &a, false); err != nil {
		return nil, err
	}
	return &a, nil
}
