package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/config"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// importFlags holds the flag values of the root (import) command.
type importFlags struct {
	dataDir    string
	database   string
	configPath string
	timeout    time.Duration
	summary    bool
	verbose    bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "ecomload",
		Short: "Load the e-commerce CSV export into a relational database",
		Long: `ecomload rebuilds the customers, products, orders, order_items and payments
tables from the CSV files in a data directory.

Every run drops and recreates the five tables, then appends each file's rows in
order. Numeric columns are coerced; cells that are not numbers become NULL.
Nothing else in the database is touched.

The target is a SQLite file (default ecommerce.db) or a PostgreSQL URL
(postgres:// or postgresql://).

Configuration precedence: flags > environment (ECOMLOAD_DATA_DIR,
ECOMLOAD_DATABASE, .env) > ecomload.yaml > defaults.

Exit Codes:
  0  - Success
  1  - Import failed (missing directory or file, malformed CSV, constraint violation)
  2  - CLI usage error (unexpected arguments or invalid flags)
  3  - Panic or unexpected system error`,
		Args:         NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, flags)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ecomload.ErrUsage, err)
	})

	bindImportFlags(cmd, flags)
	cmd.AddCommand(newTablesCmd(), newSchemaCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func bindImportFlags(cmd *cobra.Command, flags *importFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.dataDir, "data-dir", ecomload.DefaultDataDir, "Directory containing the source CSV files")
	f.StringVarP(&flags.database, "database", "d", ecomload.DefaultDatabasePath, "SQLite file path or PostgreSQL URL")
	f.StringVar(&flags.configPath, "config", config.ConfigFileName, "Path to the project config file")
	f.DurationVar(&flags.timeout, "timeout", ecomload.DefaultTimeout, "Timeout for the whole import (0 means no timeout)")
	f.BoolVar(&flags.summary, "summary", false, "Print per-table row counts after a successful import")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output for all commands")

	cmd.MarkFlagFilename("config", "yaml", "yml")
	cmd.MarkFlagDirname("data-dir")
}
