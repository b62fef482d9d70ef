package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

func appDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "lifeline")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

// Open opens (creating if necessary) the default event database.
func Open() (*sql.DB, error) {
	dir, err := appDataDir()
	if err != nil {
		return nil, err
	}
	return OpenPath(filepath.Join(dir, "lifeline.db"))
}

// OpenPath opens an event database at an explicit path. Tests point this at
// a temp directory.
func OpenPath(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	dbh, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := migrate(dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}

	if err := EnsureNotesColumn(dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}

	return dbh, nil
}

func migrate(dbh *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := dbh.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

// ------------------------------
// Notes column (idempotent upgrader)
// ------------------------------

// EnsureNotesColumn adds the free-text notes column to databases created
// before it existed.
func EnsureNotesColumn(dbh *sql.DB) error {
	needNotes := true

	rows, err := dbh.Query(`PRAGMA table_info(events)`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		if strings.ToLower(name) == "notes" {
			needNotes = false
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if needNotes {
		if _, err := dbh.Exec(`ALTER TABLE events ADD COLUMN notes TEXT`); err != nil {
			return fmt.Errorf("add notes: %w", err)
		}
	}
	return nil
}
