// Package cli wires the simulators, reporting and persistence into the csim
// command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tenghoit/csc380-s26/config"
	"github.com/tenghoit/csc380-s26/logging"
	"github.com/tenghoit/csc380-s26/store"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagDB        string
	flagReportDir string
	flagNoStore   bool

	cfg    config.Config
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "csim",
		Short: "csim — CPU scheduling and page replacement simulator",
		Long: "csim compares classic CPU dispatch policies (FCFS, SJF, SRTN, Round Robin)\n" +
			"over a job set, and page replacement algorithms over a reference string.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Default()
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// Flags set on the command line win over file values.
			if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") || cfg.LogFormat == "" {
				cfg.LogFormat = flagLogFormat
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = flagDB
			}
			if cmd.Flags().Changed("report-dir") || cfg.ReportDir == "" {
				cfg.ReportDir = flagReportDir
			}
			logger = logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite run-history database (empty disables persistence)")
	root.PersistentFlags().StringVar(&flagReportDir, "report-dir", "reports", "Directory for JSON run reports")
	root.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "Skip persisting this run to the database")

	root.AddCommand(
		newRunCmd(),
		newPagerepCmd(),
		newHistoryCmd(),
	)
	return root
}

// openStore opens the configured history database, or (nil, nil) when
// persistence is off.
func openStore() (store.Store, error) {
	if cfg.DBPath == "" || flagNoStore {
		return nil, nil
	}
	st, err := store.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return st, nil
}
