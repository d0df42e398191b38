package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/gravitrone/wordroom/internal/vocab"

	_ "modernc.org/sqlite"
)

// SQLite stores the vocabulary in a single-table SQLite database.
type SQLite struct {
	Path string
}

func (s *SQLite) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return nil, ioErr("create data dir", err)
	}
	// modernc.org/sqlite registers the "sqlite" driver name.
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, ioErr("open sqlite", err)
	}
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS entries (
			key   TEXT PRIMARY KEY,
			word  TEXT NOT NULL,
			notes TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, ioErr("prepare sqlite", err)
		}
	}
	return db, nil
}

// Load reads every row. A new database is an empty vocabulary.
func (s *SQLite) Load(ctx context.Context) ([]vocab.Entry, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT word, notes FROM entries ORDER BY key, word`)
	if err != nil {
		return nil, ioErr("query entries", err)
	}
	defer rows.Close()

	var entries []vocab.Entry
	for rows.Next() {
		var e vocab.Entry
		if err := rows.Scan(&e.Word, &e.Notes); err != nil {
			return nil, ioErr("scan entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, ioErr("read entries", err)
	}
	return entries, nil
}

// Save replaces every row inside one transaction.
func (s *SQLite) Save(ctx context.Context, entries []vocab.Entry) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return ioErr("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return ioErr("clear entries", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (key, word, notes) VALUES (?, ?, ?)`)
	if err != nil {
		return ioErr("prepare insert", err)
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, vocab.IdentityKey(e.Word), e.Word, e.Notes); err != nil {
			return ioErr("insert "+e.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return ioErr("commit", err)
	}
	return nil
}
