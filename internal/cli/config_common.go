package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/config"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvDataDir  = "ECOMLOAD_DATA_DIR"
	EnvDatabase = "ECOMLOAD_DATABASE"
)

// settings are the effective import settings after precedence is applied.
type settings struct {
	dataDir  string
	database string
	timeout  time.Duration
}

// loadProjectConfig loads .env and the project configuration.
// A missing config file at the default location is not an error; a missing
// file the user named explicitly is.
func loadProjectConfig(path string, explicit bool) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return projectCfg, nil
}

// resolveSettings applies flag > environment > ecomload.yaml > default.
func resolveSettings(
	cmd *cobra.Command,
	flags *importFlags,
	projectCfg *config.ProjectConfig,
	getenv func(string) string,
) (settings, error) {
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	s := settings{
		dataDir:  pick(cmd, "data-dir", flags.dataDir, getenv(EnvDataDir), projectCfg.DataDir),
		database: pick(cmd, "database", flags.database, getenv(EnvDatabase), projectCfg.Database),
		timeout:  flags.timeout,
	}

	if !cmd.Flags().Changed("timeout") {
		cfgTimeout, err := projectCfg.ParsedTimeout()
		if err != nil {
			return settings{}, fmt.Errorf("invalid timeout in %s: %w", config.ConfigFileName, err)
		}
		if cfgTimeout > 0 {
			s.timeout = cfgTimeout
		}
	}

	return s, nil
}

// pick returns the first set value by precedence. The flag value doubles as
// the default when nothing else is set.
func pick(cmd *cobra.Command, flagName, flagValue, envValue, cfgValue string) string {
	switch {
	case cmd.Flags().Changed(flagName):
		return flagValue
	case envValue != "":
		return envValue
	case cfgValue != "":
		return cfgValue
	default:
		return flagValue
	}
}
