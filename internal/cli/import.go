package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/catalog"
	"github.com/vvka-141/ecomload/internal/db"
	"github.com/vvka-141/ecomload/internal/files/filesystem"
	"github.com/vvka-141/ecomload/internal/logging"
	"github.com/vvka-141/ecomload/internal/services"
	"github.com/vvka-141/ecomload/internal/ui"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

func runImport(cmd *cobra.Command, flags *importFlags) error {
	projectCfg, err := loadProjectConfig(flags.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	s, err := resolveSettings(cmd, flags, projectCfg, os.Getenv)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), flags.verbose)
	logger.Verbose("Data directory: %s", s.dataDir)
	logger.Verbose("Database: %s", redactTarget(s.database))
	logger.Verbose("Timeout: %s", s.timeout)

	importConfig := ecomload.ImportConfig{
		DataDir: s.dataDir,
		Target:  s.database,
		Tables:  catalog.Tables(),
		Timeout: s.timeout,
	}

	importer := services.NewImportService(
		db.NewOpener(logger),
		filesystem.NewOSFileSystem(),
		logger,
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(cmd.ErrOrStderr(), "\n[INTERRUPT] Received interrupt signal, cancelling import...")
			cancel()
		case <-ctx.Done():
		}
	}()

	report, err := importer.Import(ctx, importConfig)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded CSV data into %s\n", report.Location)
	if flags.summary {
		fmt.Fprint(out, ui.NewRenderer(ui.ColorEnabled(out)).Summary(report))
	}
	return nil
}

func redactTarget(target string) string {
	if db.IsPostgresURL(target) {
		return db.RedactURL(target)
	}
	return target
}
