package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "mymusic"
	dbFileName = "mymusic.db"
)

// Manager persists playback sessions in a local SQLite database.
type Manager struct {
	db *sql.DB
}

// Open opens the database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the database at dbPath.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// One writer; the recorder and the CLI never need parallel connections.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Manager{db: db}, nil
}

// DefaultPath returns the database location.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

func (m *Manager) Close() error {
	return m.db.Close()
}
