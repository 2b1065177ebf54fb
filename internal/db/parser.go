package db

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Backend identifies which store implementation serves a target.
type Backend int

const (
	// BackendSQLite writes to a single SQLite database file.
	BackendSQLite Backend = iota
	// BackendPostgres writes to a PostgreSQL database.
	BackendPostgres
)

func (b Backend) String() string {
	switch b {
	case BackendPostgres:
		return "postgres"
	default:
		return "sqlite"
	}
}

// Target is a parsed import destination.
type Target struct {
	Backend Backend
	// Raw is the original target string. For SQLite it is the file path.
	Raw string
}

// ParseTarget classifies a target string. PostgreSQL URIs
// (postgres:// or postgresql://) select PostgreSQL; anything else is a
// SQLite file path.
func ParseTarget(target string) (Target, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Target{}, fmt.Errorf("database target is empty")
	}

	if IsPostgresURL(target) {
		if _, err := url.Parse(target); err != nil {
			return Target{}, fmt.Errorf("invalid PostgreSQL URI: %w", err)
		}
		return Target{Backend: BackendPostgres, Raw: target}, nil
	}

	if strings.HasSuffix(target, string(filepath.Separator)) {
		return Target{}, fmt.Errorf("database target %q is a directory, expected a file path", target)
	}
	return Target{Backend: BackendSQLite, Raw: target}, nil
}

// IsPostgresURL reports whether target is a PostgreSQL connection URI.
func IsPostgresURL(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "postgresql://") || strings.HasPrefix(lower, "postgres://")
}

// RedactURL hides the password of a connection URI for display.
func RedactURL(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		return "postgresql://<unparseable>"
	}
	return u.Redacted()
}
