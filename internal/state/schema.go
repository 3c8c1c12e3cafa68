package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS player_sessions (
			user_key TEXT PRIMARY KEY,
			current_index INTEGER NOT NULL DEFAULT -1,
			position_ms INTEGER NOT NULL DEFAULT 0,
			is_playing INTEGER NOT NULL DEFAULT 0,
			shuffle INTEGER NOT NULL DEFAULT 0,
			repeat_mode TEXT NOT NULL DEFAULT 'none',
			volume REAL NOT NULL DEFAULT 0.7,
			saved_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS player_session_tracks (
			user_key TEXT NOT NULL,
			position INTEGER NOT NULL,
			song_id TEXT,
			title TEXT NOT NULL,
			artist_name TEXT,
			artist_data TEXT,
			art_url TEXT,
			audio_src TEXT NOT NULL,
			is_favorite INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_key, position)
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: version 1 databases lack the favorite flag.
	_, _ = db.Exec(`ALTER TABLE player_session_tracks ADD COLUMN is_favorite INTEGER NOT NULL DEFAULT 0`)

	return nil
}
