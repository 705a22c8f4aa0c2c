package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/georgemunganga/storeadmin/internal/config"
	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storeadmin",
	Short: "Multi-store e-commerce admin: REST API and dashboard",
	Long: `storeadmin serves the store admin REST API and the htmx dashboard.

Configuration comes from a .env file, the YAML file named by CONFIG_FILE and
environment variables, in that order of precedence (lowest first).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, userCmd)
}

// openDB connects to the configured database.
func openDB() (*db.DB, error) {
	dialect, err := db.ParseDialect(cfg.DBDialect)
	if err != nil {
		return nil, err
	}
	return db.Open(dialect, cfg.DatabaseURL)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
