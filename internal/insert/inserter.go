// Package insert bulk-loads coerced CSV rows into destination tables.
package insert

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/vvka-141/ecomload/internal/checksum"
	"github.com/vvka-141/ecomload/internal/files/csvsource"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// FrameSource loads a CSV file into a frame.
type FrameSource interface {
	Load(filename string) (*csvsource.File, error)
}

// Inserter appends CSV rows to tables that schema recreation left empty.
// Thread-Safety: NOT safe for concurrent use on the same Store.
type Inserter struct {
	source FrameSource
	logger ecomload.Logger
}

// New creates an Inserter. Panics on nil dependencies.
func New(source FrameSource, logger ecomload.Logger) *Inserter {
	if source == nil {
		panic("source cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Inserter{source: source, logger: logger}
}

// InsertAll loads every table in spec order and stops at the first failure.
// Tables inserted before the failure stay committed; later tables stay empty.
// Returns results for the tables that were loaded.
func (ins *Inserter) InsertAll(ctx context.Context, store ecomload.Store, specs []ecomload.TableSpec) ([]ecomload.TableResult, error) {
	results := make([]ecomload.TableResult, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := ins.InsertTable(ctx, store, spec)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// InsertTable loads spec's CSV, coerces its numeric columns and appends all
// rows to the table in source order inside one transaction.
//
// Source columns the table does not declare are dropped. Declared columns
// missing from the source are left out of the insert, so NOT NULL columns
// among them fail the load. Duplicate primary keys fail the load too.
func (ins *Inserter) InsertTable(ctx context.Context, store ecomload.Store, spec ecomload.TableSpec) (result ecomload.TableResult, err error) {
	file, err := ins.source.Load(spec.Filename)
	if err != nil {
		return result, fmt.Errorf("failed to load %s: %w", spec.Name, err)
	}
	ins.logger.Verbose("Read %s: %d row(s), sha256 %s", file.Path, file.Frame.Len(), checksum.Short(file.Checksum))

	f := file.Frame
	f.CoerceNumeric(spec.NumericColumns...)

	columns, rows := f.Project(spec.ColumnNames())
	if dropped := lo.Without(f.Columns(), columns...); len(dropped) > 0 {
		ins.logger.Verbose("Ignoring %d undeclared column(s) in %s: %v", len(dropped), spec.Filename, dropped)
	}
	if missing := lo.Without(spec.ColumnNames(), columns...); len(missing) > 0 {
		ins.logger.Verbose("Column(s) absent from %s: %v", spec.Filename, missing)
	}

	tx, err := store.Begin(ctx)
	if err != nil {
		return result, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				ins.logger.Error("rollback of %s failed: %v", spec.Name, rbErr)
			}
		}
	}()

	n, err := tx.InsertRows(ctx, spec.Name, columns, rows)
	if err != nil {
		return result, fmt.Errorf("failed to insert into %s: %w", spec.Name, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("failed to commit %s: %w", spec.Name, err)
	}

	ins.logger.Verbose("Inserted %d row(s) into %s", n, spec.Name)
	return ecomload.TableResult{
		Table:    spec.Name,
		Filename: spec.Filename,
		Rows:     n,
		Checksum: file.Checksum,
	}, nil
}
