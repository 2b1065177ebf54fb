package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/catalog"
	"github.com/vvka-141/ecomload/internal/ui"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the destination tables and their source files",
		Long: `List the configuration table in load order: each destination table, the CSV
file it is loaded from and the columns coerced to numbers.`,
		Args: NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.NewRenderer(ui.ColorEnabled(out)).Tables(catalog.Tables()))
			return nil
		},
	}
}
