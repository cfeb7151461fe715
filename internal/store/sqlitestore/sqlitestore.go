package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/idilsaglam/expenses/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	text     TEXT NOT NULL
);`

// Store keeps the expense list in a single SQLite table ordered by
// insertion position. It honors the same contract as the text record.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("sqlitestore: nil db")
	}
	return &Store{db: db}, nil
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	s, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) LoadAll(ctx context.Context) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT text FROM entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := []model.Entry{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, model.Entry{Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}

func (s *Store) Append(ctx context.Context, e model.Entry) error {
	e = model.NewEntry(e.Text)
	if err := model.CheckEntries(e); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO entries (text) VALUES (?)`, e.Text); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// OverwriteAll replaces every row in one transaction.
func (s *Store) OverwriteAll(ctx context.Context, entries []model.Entry) (err error) {
	trimmed := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		trimmed = append(trimmed, model.NewEntry(e.Text))
	}
	if err := model.CheckEntries(trimmed...); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (text) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, e := range trimmed {
		if _, err = stmt.ExecContext(ctx, e.Text); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
