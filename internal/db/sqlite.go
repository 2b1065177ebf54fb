package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// SQLiteStore writes to a single SQLite database file. The file is created
// if missing and never deleted; tables inside it are replaced.
type SQLiteStore struct {
	db       *sql.DB
	location string
}

// OpenSQLite opens (or creates) the database file at path. Foreign-key
// enforcement is requested on the connection.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	uriPath := filepath.ToSlash(abs)
	if !strings.HasPrefix(uriPath, "/") {
		uriPath = "/" + uriPath
	}
	dsn := (&url.URL{
		Scheme:   "file",
		Path:     uriPath,
		RawQuery: fmt.Sprintf("_foreign_keys=on&_busy_timeout=%d", sqliteBusyTimeout),
	}).String()

	handle, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ecomload.ErrConnectionFailed, err)
	}
	handle.SetMaxOpenConns(1)

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, fmt.Errorf("%w: cannot open %s: %w", ecomload.ErrConnectionFailed, abs, err)
	}

	return NewSQLiteStore(handle, abs), nil
}

// NewSQLiteStore wraps an existing handle. Used directly by tests.
func NewSQLiteStore(handle *sql.DB, location string) *SQLiteStore {
	return &SQLiteStore{db: handle, location: location}
}

func (s *SQLiteStore) Begin(ctx context.Context) (ecomload.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *SQLiteStore) CountRows(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}

func (s *SQLiteStore) Location() string { return s.location }

func (s *SQLiteStore) Close() error { return s.db.Close() }

// DB exposes the handle for inspection queries in tests and tooling.
func (s *SQLiteStore) DB() *sql.DB { return s.db }

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Exec(ctx context.Context, stmt string) error {
	if _, err := t.tx.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to execute %q: %w", previewSQL(stmt), err)
	}
	return nil
}

func (t *sqliteTx) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	stmt, err := t.tx.PrepareContext(ctx, insertStatement(table, columns, func(int) string { return "?" }))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	var inserted int64
	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return inserted, fmt.Errorf("failed to insert row %d into %s: %w", i+1, table, err)
		}
		inserted++
	}
	return inserted, nil
}

func (t *sqliteTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback(context.Context) error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// insertStatement builds a single-row INSERT. With no columns every value
// comes from the column defaults.
func insertStatement(table string, columns []string, placeholder func(i int) string) string {
	if len(columns) == 0 {
		return "INSERT INTO " + quoteIdent(table) + " DEFAULT VALUES"
	}

	quoted := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
		marks[i] = placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(marks, ", "))
}

var _ ecomload.Store = (*SQLiteStore)(nil)
