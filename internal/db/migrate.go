package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies every pending up migration for d's dialect.
func Migrate(d *DB) error {
	m, closeSource, err := newMigrator(d)
	if err != nil {
		return err
	}
	defer closeSource()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Rollback reverts every applied migration.
func Rollback(d *DB) error {
	m, closeSource, err := newMigrator(d)
	if err != nil {
		return err
	}
	defer closeSource()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// newMigrator builds a migrator over the embedded files. The returned
// migrator must not be closed: migrate.Close would also close d.
func newMigrator(d *DB) (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationsFS, "migrations/"+string(d.Dialect))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	closeSource := func() { _ = src.Close() }

	var driver database.Driver
	switch d.Dialect {
	case Postgres:
		driver, err = postgres.WithInstance(d.DB, &postgres.Config{})
	case MySQL:
		driver, err = mysql.WithInstance(d.DB, &mysql.Config{})
	case SQLite:
		driver, err = sqlite.WithInstance(d.DB, &sqlite.Config{})
	default:
		err = fmt.Errorf("unsupported database dialect %q", d.Dialect)
	}
	if err != nil {
		closeSource()
		return nil, nil, fmt.Errorf("failed to init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(d.Dialect), driver)
	if err != nil {
		closeSource()
		return nil, nil, fmt.Errorf("failed to init migrator: %w", err)
	}
	return m, closeSource, nil
}
