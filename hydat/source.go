// Package hydat reads the HYDAT national water data archive, the SQLite
// database of historical hydrometric data published quarterly by the
// Water Survey of Canada.
package hydat

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"
)

// ErrDatabaseMissing indicates that no HYDAT database file exists at the
// resolved path.
var ErrDatabaseMissing = errors.New("hydat database not found")

// Source tells the accessor functions where to find the HYDAT database.
// The zero value resolves to the file at DefaultDBPath.
type Source struct {
	path string
	db   *sql.DB
}

// DefaultSource reads the HYDAT database at DefaultDBPath.
func DefaultSource() Source {
	return Source{}
}

// FromPath reads the HYDAT database file at path.
func FromPath(path string) Source {
	return Source{path: path}
}

// FromDB wraps an already open handle to a HYDAT database. The caller
// keeps ownership: accessor functions never close it.
func FromDB(db *sql.DB) Source {
	return Source{db: db}
}

// open returns a handle to the HYDAT database. owned reports whether the
// caller must close it when done.
func (s Source) open() (db *sql.DB, owned bool, err error) {
	if s.db != nil {
		return s.db, false, nil
	}

	path := s.path
	if path == "" {
		path = DefaultDBPath()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("no HYDAT database at %s, run 'hydat download' to fetch it: %w", path, ErrDatabaseMissing)
		}
		return nil, false, fmt.Errorf("checking hydat database: %w", err)
	}

	db, err = sql.Open("sqlite", path)
	if err != nil {
		return nil, false, fmt.Errorf("opening hydat database: %w", err)
	}
	return db, true, nil
}
