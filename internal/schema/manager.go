// Package schema drops and recreates the destination tables.
package schema

import (
	"context"
	"fmt"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// Manager recreates destination tables from their DDL.
// Stateless and safe for concurrent use; the Store decides what that means
// for the database itself.
type Manager struct {
	logger ecomload.Logger
}

// New creates a Manager. Panics if logger is nil.
func New(logger ecomload.Logger) *Manager {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Manager{logger: logger}
}

// Recreate drops every table in specs (if present) and creates it empty
// from its DDL, in spec order. All statements run in one transaction that
// commits once; on any error it is rolled back and nothing changes.
// Existing rows are discarded without backup.
func (m *Manager) Recreate(ctx context.Context, store ecomload.Store, specs []ecomload.TableSpec) (err error) {
	tx, err := store.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				m.logger.Error("rollback of schema recreation failed: %v", rbErr)
			}
		}
	}()

	for _, spec := range specs {
		m.logger.Verbose("Recreating table %s", spec.Name)
		if err := tx.Exec(ctx, DropStatement(spec.Name)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", spec.Name, err)
		}
		if err := tx.Exec(ctx, spec.DDL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", spec.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema recreation: %w", err)
	}
	return nil
}

// DropStatement returns the statement that removes table if it exists.
func DropStatement(table string) string {
	return "DROP TABLE IF EXISTS " + table
}
