package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/catalog"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// NoArgs rejects positional arguments. The import is configured through
// flags, environment and ecomload.yaml only.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf(`%w: unexpected argument %q

Usage: %s

Example:
  %s --data-dir ./exports --database shop.db`, ecomload.ErrUsage, args[0], cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// KnownTables validates that every argument names a configured table.
func KnownTables(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		if _, ok := catalog.Lookup(name); !ok {
			return fmt.Errorf(`%w: unknown table %q

Use '%s tables' to see the configured tables.`, ecomload.ErrUsage, name, cmd.Root().Name())
		}
	}
	return nil
}
