package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrReferenced is returned when a foreign key blocks a write or delete.
	ErrReferenced = errors.New("record is referenced by other records")
	// ErrDuplicate is returned on unique constraint violations.
	ErrDuplicate = errors.New("record already exists")
)

// Classify maps driver-specific errors onto the sentinels above. Errors it
// does not recognise are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return fmt.Errorf("%w: %s", ErrReferenced, pqErr.Message)
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Message)
		}
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1451, 1452:
			return fmt.Errorf("%w: %s", ErrReferenced, myErr.Message)
		case 1062:
			return fmt.Errorf("%w: %s", ErrDuplicate, myErr.Message)
		}
		return err
	}

	// modernc.org/sqlite reports constraint failures in the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %s", ErrReferenced, msg)
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", ErrDuplicate, msg)
	}
	return err
}

// ExpectOne returns ErrNotFound when res affected no rows.
func ExpectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
