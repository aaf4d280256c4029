package sqlite

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrConstraint marks a write rejected by a foreign key, unique or check
	// constraint. The caller sent something the store cannot accept.
	ErrConstraint = errors.New("sqlite: constraint violation")
	// ErrUnavailable marks a store that cannot be opened, read or written.
	ErrUnavailable = errors.New("sqlite: storage unavailable")
)

// Translate tags driver errors with ErrConstraint or ErrUnavailable while
// keeping the original error in the chain. Other errors pass through.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConstraint) || errors.Is(err, ErrUnavailable) {
		return err
	}

	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code() & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	case sqlite3.SQLITE_BUSY,
		sqlite3.SQLITE_LOCKED,
		sqlite3.SQLITE_CANTOPEN,
		sqlite3.SQLITE_IOERR,
		sqlite3.SQLITE_READONLY,
		sqlite3.SQLITE_FULL,
		sqlite3.SQLITE_CORRUPT,
		sqlite3.SQLITE_NOTADB:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

func IsConstraint(err error) bool {
	return errors.Is(Translate(err), ErrConstraint)
}

func IsUnavailable(err error) bool {
	return errors.Is(Translate(err), ErrUnavailable)
}
