// Package cli defines the car-catalog command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"car-catalog/internal/app"
	"car-catalog/internal/config"
	"car-catalog/internal/logger"
)

const (
	flagConfig   = "config"
	flagFile     = "file"
	flagUI       = "ui"
	flagSort     = "sort"
	flagWatch    = "watch"
	flagLogLevel = "log-level"
	flagJSONLogs = "json-logs"
	flagLogFile  = "log-file"
)

// NewRootCmd builds the command tree. Each call returns independent commands
// with their own viper instance.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "car-catalog",
		Short: "Browse a car catalog",
		Long: `car-catalog shows the cars listed in a JSON file, lets you sort them by
year or brand and opens a web search for the selected car.

Settings come from an optional TOML file, CARCATALOG_* environment variables
and flags, in increasing priority.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViewer(cmd, v)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.String(flagConfig, "", fmt.Sprintf("Path to a TOML config file (default %q if present)", config.DefaultConfigFile))
	persistent.String(flagFile, config.DefaultCatalog, "Catalog JSON file")
	persistent.String(flagSort, "", "Initial order: newest-first, oldest-first, brand-asc, brand-desc")
	persistent.String(flagLogLevel, "info", "Log level: debug, info, warn, error")
	persistent.Bool(flagJSONLogs, false, "Write logs as JSON")
	persistent.String(flagLogFile, "", "Write JSON logs to this file instead of stderr")

	rootCmd.Flags().String(flagUI, config.InterfaceGUI, "Front end: gui or tui")
	rootCmd.Flags().Bool(flagWatch, false, "Reload the catalog when the file changes")

	bindFlags(v, persistent, map[string]string{
		config.KeyCatalogFile: flagFile,
		config.KeyDefaultSort: flagSort,
		config.KeyLogLevel:    flagLogLevel,
		config.KeyLogJSON:     flagJSONLogs,
		config.KeyLogFile:     flagLogFile,
	})
	bindFlags(v, rootCmd.Flags(), map[string]string{
		config.KeyInterface: flagUI,
		config.KeyWatch:     flagWatch,
	})

	rootCmd.AddCommand(newListCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// Only fails for a nil flag, which would be a typo in the table above.
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func runViewer(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}

	// Logs would draw over a full screen terminal UI.
	stderr := cmd.ErrOrStderr()
	if cfg.Interface == config.InterfaceTUI {
		stderr = io.Discard
	}

	log, cleanup, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.NewApplication(cfg, log).Run()
}

// loadConfig layers defaults, the TOML file, environment and flags, then validates.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	required := path != ""
	if !required {
		path = config.DefaultConfigFile
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Merge(v)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger writes to the configured log file, or to stderr when none is set.
// Log files are always JSON.
func newLogger(cfg config.Config, stderr io.Writer) (logger.Logger, func(), error) {
	writer := stderr
	cleanup := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = f
		cleanup = func() { _ = f.Close() }
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON || cfg.Log.File != "",
		Writer: writer,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return log, cleanup, nil
}
