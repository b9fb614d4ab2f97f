// apps/solver/internal/db/db.go
//
// SQLite helpers for the word catalog.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Importing and listing named word lists.
//
// The catalog is only a word-list source; solving sessions are never persisted.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// ErrUnknownList is returned by ListWords for a list that was never imported.
var ErrUnknownList = errors.New("db: unknown word list")

// Open opens (and creates if missing) a SQLite database file.
//
//   - Ensures the parent directory exists for relative DSNs (e.g. ./data/words.db).
//   - Configures busy timeout and WAL journaling.
//   - Enforces foreign keys.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// Migrate applies every *.sql file of fsys in lexical order.
// Applied files are tracked in _migrations and skipped on later runs.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// ImportWords appends words to the named list, creating it if needed.
// Words already in the list are ignored; new ones keep their input order
// after the existing entries. It returns how many words were added.
func ImportWords(ctx context.Context, db *sql.DB, list string, words []string) (int, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return 0, errors.New("db: list name required")
	}
	if len(words) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO word_lists(name, length) VALUES (?, ?)`, list, len(words[0]),
	); err != nil {
		return 0, fmt.Errorf("create list %s: %w", list, err)
	}

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(ordinal), -1) + 1 FROM words WHERE list=?`, list,
	).Scan(&next); err != nil {
		return 0, fmt.Errorf("next ordinal: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(list, ordinal, word) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, w := range words {
		res, err := stmt.ExecContext(ctx, list, next, w)
		if err != nil {
			return added, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
			next++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return added, nil
}

// ListWords returns the words of a list in import order.
func ListWords(ctx context.Context, db *sql.DB, list string) ([]string, error) {
	var exists int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM word_lists WHERE name=?`, list).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, list)
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT word FROM words WHERE list=? ORDER BY ordinal ASC`, list)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// ListInfo summarizes one catalog list.
type ListInfo struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
	Words  int    `json:"words"`
}

// Lists returns every catalog list ordered by name.
func Lists(ctx context.Context, db *sql.DB) ([]ListInfo, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT l.name, l.length, COUNT(w.word)
        FROM word_lists l LEFT JOIN words w ON w.list = l.name
        GROUP BY l.name, l.length
        ORDER BY l.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListInfo
	for rows.Next() {
		var li ListInfo
		if err := rows.Scan(&li.Name, &li.Length, &li.Words); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}
