package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/mymusic/internal/db"
)

// SessionTrack is one queue entry of a saved session.
type SessionTrack struct {
	SongID     string `json:"_id,omitempty"`
	Title      string `json:"title"`
	ArtistName string `json:"artistName,omitempty"`
	ArtistData string `json:"artistData,omitempty"`
	ArtURL     string `json:"artUrl,omitempty"`
	AudioSrc   string `json:"audioSrc"`
	IsFavorite bool   `json:"isFavorite,omitempty"`
}

// Session is the saved player state of one user key.
type Session struct {
	UserKey      string         `json:"-"`
	Tracks       []SessionTrack `json:"currentQueue"`
	CurrentIndex int            `json:"currentIndex"`
	Position     time.Duration  `json:"-"`
	CurrentTime  float64        `json:"currentTime"` // seconds, filled on read
	IsPlaying    bool           `json:"isPlaying"`
	Shuffle      bool           `json:"isShuffle"`
	RepeatMode   string         `json:"repeatMode"`
	Volume       float64        `json:"volume"`
	SavedAt      time.Time      `json:"savedAt"`
}

// SessionSummary describes a saved session without its tracks.
type SessionSummary struct {
	UserKey    string
	TrackCount int
	SavedAt    time.Time
}

// SaveSession replaces the session stored under s.UserKey.
func (m *Manager) SaveSession(ctx context.Context, s Session) error {
	if s.UserKey == "" {
		return errors.New("save session: empty user key")
	}
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}

	return dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO player_sessions
				(user_key, current_index, position_ms, is_playing, shuffle, repeat_mode, volume, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_key) DO UPDATE SET
				current_index = excluded.current_index,
				position_ms = excluded.position_ms,
				is_playing = excluded.is_playing,
				shuffle = excluded.shuffle,
				repeat_mode = excluded.repeat_mode,
				volume = excluded.volume,
				saved_at = excluded.saved_at
		`, s.UserKey, s.CurrentIndex, s.Position.Milliseconds(), s.IsPlaying, s.Shuffle,
			s.RepeatMode, s.Volume, s.SavedAt.Unix())
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM player_session_tracks WHERE user_key = ?`, s.UserKey); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO player_session_tracks
				(user_key, position, song_id, title, artist_name, artist_data, art_url, audio_src, is_favorite)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range s.Tracks {
			_, err := stmt.ExecContext(ctx, s.UserKey, i,
				dbutil.NullString(t.SongID), t.Title,
				dbutil.NullString(t.ArtistName), dbutil.NullString(t.ArtistData),
				dbutil.NullString(t.ArtURL), t.AudioSrc, t.IsFavorite)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetSession returns the session stored under key, or nil if none.
func (m *Manager) GetSession(ctx context.Context, key string) (*Session, error) {
	s := Session{UserKey: key}
	var positionMS, savedAt int64
	err := m.db.QueryRowContext(ctx, `
		SELECT current_index, position_ms, is_playing, shuffle, repeat_mode, volume, saved_at
		FROM player_sessions WHERE user_key = ?
	`, key).Scan(&s.CurrentIndex, &positionMS, &s.IsPlaying, &s.Shuffle, &s.RepeatMode, &s.Volume, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is not an error
	}
	if err != nil {
		return nil, err
	}
	s.Position = time.Duration(positionMS) * time.Millisecond
	s.CurrentTime = s.Position.Seconds()
	s.SavedAt = time.Unix(savedAt, 0)

	rows, err := m.db.QueryContext(ctx, `
		SELECT song_id, title, artist_name, artist_data, art_url, audio_src, is_favorite
		FROM player_session_tracks
		WHERE user_key = ?
		ORDER BY position
	`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t SessionTrack
		var songID, artistName, artistData, artURL sql.NullString
		if err := rows.Scan(&songID, &t.Title, &artistName, &artistData, &artURL, &t.AudioSrc, &t.IsFavorite); err != nil {
			return nil, err
		}
		t.SongID = dbutil.NullStringValue(songID)
		t.ArtistName = dbutil.NullStringValue(artistName)
		t.ArtistData = dbutil.NullStringValue(artistData)
		t.ArtURL = dbutil.NullStringValue(artURL)
		s.Tracks = append(s.Tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes the session stored under key.
func (m *Manager) DeleteSession(ctx context.Context, key string) error {
	return dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM player_session_tracks WHERE user_key = ?`, key); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM player_sessions WHERE user_key = ?`, key)
		return err
	})
}

// ListSessions summarizes every saved session, most recent first.
func (m *Manager) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT s.user_key, s.saved_at, COUNT(t.position)
		FROM player_sessions s
		LEFT JOIN player_session_tracks t ON t.user_key = s.user_key
		GROUP BY s.user_key
		ORDER BY s.saved_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var savedAt int64
		if err := rows.Scan(&sum.UserKey, &savedAt, &sum.TrackCount); err != nil {
			return nil, err
		}
		sum.SavedAt = time.Unix(savedAt, 0)
		out = append(out, sum)
	}
	return out, rows.Err()
}
