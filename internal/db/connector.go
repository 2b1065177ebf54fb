package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns keeps the import on a single connection; the run is
	// strictly sequential.
	DefaultMaxConns = 1

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime keeps the connection alive during long loads.
	DefaultMaxConnIdleTime = 30 * time.Minute

	// sqliteBusyTimeout is how long SQLite waits on a locked database file, in ms.
	sqliteBusyTimeout = 5000
)

func configurePool(poolConfig *pgxpool.Config, logger ecomload.Logger) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
		logger.Verbose("postgres: %s", notice.Message)
	}
}

// NewOpener returns a StoreOpener that picks the backend from the target
// string and routes driver notices to logger.
func NewOpener(logger ecomload.Logger) ecomload.StoreOpener {
	return func(ctx context.Context, target string) (ecomload.Store, error) {
		return Open(ctx, target, logger)
	}
}

// Open opens the store for target. Failures wrap ecomload.ErrConnectionFailed.
func Open(ctx context.Context, target string, logger ecomload.Logger) (ecomload.Store, error) {
	parsed, err := ParseTarget(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ecomload.ErrInvalidConfig, err)
	}

	switch parsed.Backend {
	case BackendPostgres:
		return OpenPostgres(ctx, parsed.Raw, logger)
	default:
		return OpenSQLite(ctx, parsed.Raw)
	}
}

// wrapConnectionError wraps raw connection errors with actionable guidance.
func wrapConnectionError(err error, host string, port uint16, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port

Original error: %w`, ecomload.ErrConnectionFailed, addr, host, port, err)

	case strings.Contains(errStr, "no such host"):
		return fmt.Errorf(`%w: cannot resolve host "%s"

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable

Original error: %w`, ecomload.ErrConnectionFailed, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for database "%s"

Possible causes:
  - Wrong password in the connection URL or $PGPASSWORD
  - Wrong username

Original error: %w`, ecomload.ErrConnectionFailed, database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`%w: database "%s" does not exist

To create it:
  createdb %s

Original error: %w`, ecomload.ErrConnectionFailed, database, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection timed out to %s

Original error: %w`, ecomload.ErrConnectionFailed, addr, err)

	default:
		return fmt.Errorf("%w: failed to connect to database: %w", ecomload.ErrConnectionFailed, err)
	}
}

// quoteIdent double-quotes an SQL identifier. Both backends accept this form.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// previewSQL shortens a statement for error messages.
func previewSQL(sql string) string {
	sql = strings.Join(strings.Fields(sql), " ")
	if len(sql) > ecomload.MaxErrorPreviewLength {
		return sql[:ecomload.MaxErrorPreviewLength] + "..."
	}
	return sql
}
