package main

import (
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/project-dashboard/config"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Mock project dashboard backend",
	Long: `dashboard serves a seeded, in-memory portfolio of companies and projects
over HTTP and offers offline commands to inspect or export it.

Examples:
  dashboard serve                          # Start the API (default)
  dashboard summary                        # Print the portfolio aggregate
  dashboard export --company 1 --out a.xlsx`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err = logging.New(cfg.App.Environment, cfg.App.LogLevel)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, summaryCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
