package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// PostgresStore writes to a PostgreSQL database through a pgx pool.
// Rows are bulk-loaded with COPY.
type PostgresStore struct {
	pool     *pgxpool.Pool
	location string
}

// OpenPostgres connects to connStr and verifies the connection with a ping.
func OpenPostgres(ctx context.Context, connStr string, logger ecomload.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse connection config: %w", ecomload.ErrInvalidConfig, err)
	}

	configurePool(poolConfig, logger)

	cc := poolConfig.ConnConfig
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, cc.Host, cc.Port, cc.Database)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, cc.Host, cc.Port, cc.Database)
	}

	return &PostgresStore{pool: pool, location: RedactURL(connStr)}, nil
}

func (s *PostgresStore) Begin(ctx context.Context) (ecomload.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &pgTx{tx: tx}, nil
}

func (s *PostgresStore) CountRows(ctx context.Context, table string) (int64, error) {
	var n int64
	query := "SELECT COUNT(*) FROM " + pgx.Identifier{table}.Sanitize()
	if err := s.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}

func (s *PostgresStore) Location() string { return s.location }

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Pool exposes the pool for inspection queries in tests and tooling.
func (s *PostgresStore) Pool() *pgxpool.Pool { return s.pool }

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Exec(ctx context.Context, stmt string) error {
	if _, err := t.tx.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to execute %q: %w", previewSQL(stmt), err)
	}
	return nil
}

func (t *pgTx) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	// COPY needs at least one column.
	if len(columns) == 0 {
		stmt := insertStatement(table, nil, nil)
		for i := range rows {
			if _, err := t.tx.Exec(ctx, stmt); err != nil {
				return int64(i), fmt.Errorf("failed to insert row %d into %s: %w", i+1, table, err)
			}
		}
		return int64(len(rows)), nil
	}

	n, err := t.tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("failed to copy rows into %s: %w", table, err)
	}
	return n, nil
}

func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

var _ ecomload.Store = (*PostgresStore)(nil)
