package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/catalog"
	"github.com/vvka-141/ecomload/internal/schema"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

func newSchemaCmd() *cobra.Command {
	var withDrop bool

	cmd := &cobra.Command{
		Use:   "schema [table...]",
		Short: "Print the DDL of the destination tables",
		Long: `Print the CREATE TABLE statements an import executes, in load order.
With table names, only those tables are printed (still in load order).`,
		Example: `  ecomload schema
  ecomload schema orders order_items
  ecomload schema --drop | sqlite3 ecommerce.db`,
		Args:              KnownTables,
		ValidArgsFunction: completeTableNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := selectTables(catalog.Tables(), args)
			out := cmd.OutOrStdout()
			for i, spec := range specs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if withDrop {
					fmt.Fprintf(out, "%s;\n", schema.DropStatement(spec.Name))
				}
				fmt.Fprintln(out, spec.DDL())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDrop, "drop", false, "Precede each CREATE TABLE with DROP TABLE IF EXISTS")
	return cmd
}

// selectTables keeps the tables named in names, in load order. No names
// selects everything.
func selectTables(specs []ecomload.TableSpec, names []string) []ecomload.TableSpec {
	if len(names) == 0 {
		return specs
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []ecomload.TableSpec
	for _, s := range specs {
		if wanted[s.Name] {
			out = append(out, s)
		}
	}
	return out
}
