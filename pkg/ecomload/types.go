package ecomload

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Column describes one declared column of a destination table.
type Column struct {
	Name       string
	Type       string // SQL type as written in the DDL: TEXT, REAL or INTEGER
	PrimaryKey bool
	NotNull    bool
}

// TableSpec is one entry of the configuration table: where the rows come
// from, what the destination looks like and which columns hold numbers.
type TableSpec struct {
	// Name is the destination table name.
	Name string

	// Filename is the CSV file name, relative to the data directory.
	Filename string

	// Columns are the declared columns in DDL order.
	Columns []Column

	// NumericColumns are coerced to numbers before insertion.
	NumericColumns []string
}

// ColumnNames returns the declared column names in DDL order.
func (s TableSpec) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// DDL renders the CREATE TABLE statement for the table.
func (s TableSpec) DDL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", s.Name)
	for i, c := range s.Columns {
		b.WriteString("    ")
		b.WriteString(c.Name)
		b.WriteString(" ")
		b.WriteString(c.Type)
		switch {
		case c.PrimaryKey:
			b.WriteString(" PRIMARY KEY")
		case c.NotNull:
			b.WriteString(" NOT NULL")
		}
		if i < len(s.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String()
}

// ImportConfig contains everything needed for one import run.
type ImportConfig struct {
	// DataDir is the directory containing the source CSV files.
	DataDir string

	// Target is either a SQLite file path or a postgres:// connection URL.
	Target string

	// Tables are processed in slice order for both recreation and insertion.
	Tables []TableSpec

	// Timeout is the global timeout for the run. Zero means no timeout.
	Timeout time.Duration
}

// Validate checks that the config has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (c *ImportConfig) Validate() error {
	var errs []error

	if c.DataDir == "" {
		errs = append(errs, fmt.Errorf("DataDir is required: %w", ErrInvalidConfig))
	}
	if c.Target == "" {
		errs = append(errs, fmt.Errorf("Target is required: %w", ErrInvalidConfig))
	}
	if len(c.Tables) == 0 {
		errs = append(errs, fmt.Errorf("at least one table is required: %w", ErrInvalidConfig))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	seen := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("table %q configured twice: %w", t.Name, ErrInvalidConfig))
		}
		seen[t.Name] = true
	}

	return errors.Join(errs...)
}

// TableResult records the outcome of loading one table.
type TableResult struct {
	Table    string
	Filename string
	Rows     int64
	Checksum string // hex SHA-256 of the source file
}

// ImportReport summarizes a successful import.
type ImportReport struct {
	RunID    uuid.UUID
	Location string
	Tables   []TableResult
	Started  time.Time
	Duration time.Duration
}

// TotalRows returns the number of rows inserted across all tables.
func (r *ImportReport) TotalRows() int64 {
	var total int64
	for _, t := range r.Tables {
		total += t.Rows
	}
	return total
}
