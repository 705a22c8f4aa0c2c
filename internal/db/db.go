package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

// ParseDialect returns the dialect for name, or an error for anything unknown.
func ParseDialect(name string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(name))); d {
	case Postgres, MySQL, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", name)
	}
}

// DB wraps *sql.DB and rewrites "?" placeholders for the active dialect, so
// repositories write each query once.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects to dsn with the driver for dialect and pings it.
func Open(dialect Dialect, dsn string) (*DB, error) {
	sqlDB, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == SQLite {
		// one writer; also keeps ":memory:" databases alive across calls
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{DB: sqlDB, Dialect: dialect}, nil
}

// OpenForTesting returns a private in-memory SQLite database with all
// migrations applied.
func OpenForTesting() (*DB, error) {
	d, err := Open(SQLite, "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	d.SetMaxIdleConns(1)
	d.SetConnMaxLifetime(0)
	if err := Migrate(d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// Rebind converts "?" placeholders to the dialect's native form.
func (d *DB) Rebind(query string) string {
	return rebind(d.Dialect, query)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.DB.ExecContext(ctx, d.Rebind(query), args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, d.Rebind(query), args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.DB.QueryRowContext(ctx, d.Rebind(query), args...)
}

// BeginTx starts a transaction whose statements are rebound like DB's.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, dialect: d.Dialect}, nil
}

// Tx is a transaction that rebinds placeholders.
type Tx struct {
	*sql.Tx
	dialect Dialect
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.Tx.ExecContext(ctx, rebind(t.dialect, query), args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.Tx.QueryContext(ctx, rebind(t.dialect, query), args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return t.Tx.QueryRowContext(ctx, rebind(t.dialect, query), args...)
}

func rebind(dialect Dialect, query string) string {
	if dialect != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Placeholders returns n comma-separated "?" markers for IN clauses.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
