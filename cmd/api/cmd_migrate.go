package main

import (
	"github.com/spf13/cobra"

	"github.com/georgemunganga/storeadmin/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(db.Migrate)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every applied migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(db.Rollback)
	},
}

func withDB(fn func(*db.DB) error) error {
	d, err := openDB()
	if err != nil {
		return err
	}
	defer d.Close()
	if err := fn(d); err != nil {
		return err
	}
	logger.Info("migrations complete")
	return nil
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
