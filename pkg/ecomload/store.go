package ecomload

import "context"

// Store abstracts the destination database. Backends exist for a SQLite file
// and for PostgreSQL; callers never see driver types.
//
// Thread-Safety: a Store is used by a single import run at a time.
type Store interface {
	// Begin starts a transaction. All schema and row writes go through a Tx.
	Begin(ctx context.Context) (Tx, error)

	// CountRows returns the number of rows currently in table.
	CountRows(ctx context.Context, table string) (int64, error)

	// Location describes where the data lands (file path or redacted URL).
	Location() string

	// Close releases the underlying connection(s).
	Close() error
}

// Tx is a database transaction on a Store.
type Tx interface {
	// Exec executes a statement that returns no rows.
	Exec(ctx context.Context, sql string) error

	// InsertRows appends rows to table, preserving slice order. Each row holds
	// one value per entry of columns; nil is stored as NULL.
	InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	// Commit makes the transaction's writes durable.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error
}

// StoreOpener opens a Store for a target string.
type StoreOpener func(ctx context.Context, target string) (Store, error)

// Importer runs a full import.
type Importer interface {
	Import(ctx context.Context, config ImportConfig) (*ImportReport, error)
}
