package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const envelopeKey = "state"

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), dbFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a CLI and a TUI overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS document (
		k TEXT PRIMARY KEY,
		v BLOB NOT NULL
	);`)
	return err
}

func readEnvelopeRow(ctx context.Context, db *sql.DB) ([]byte, bool, error) {
	var raw []byte
	err := db.QueryRowContext(ctx, `SELECT v FROM document WHERE k = ?`, envelopeKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func writeEnvelopeRow(ctx context.Context, db *sql.DB, raw []byte) error {
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO document(k, v) VALUES(?, ?)`, envelopeKey, raw)
	return err
}
