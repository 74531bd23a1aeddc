package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Domain errors shared by the repository packages. Callers distinguish
// them with errors.Is; anything else coming out of a repository is a
// backing-store failure and safe to treat as retryable.
var (
	ErrBookNotFound  = errors.New("book not found")
	ErrGenreNotFound = errors.New("genre not found")

	// ErrDuplicateGenreName signals a case-sensitive name collision on
	// genre creation or rename.
	ErrDuplicateGenreName = errors.New("genre name already exists")

	// ErrInvalidGenreReference signals a book pointing at a genre id
	// that does not exist.
	ErrInvalidGenreReference = errors.New("referenced genre does not exist")

	// ErrGenreInUse blocks deletion of a genre that books still
	// reference. Deletion is refused, never cascaded.
	ErrGenreInUse = errors.New("genre is referenced by existing books")
)

// IsUniqueConstraint reports whether err is a sqlite unique-constraint
// violation. The repositories pre-check uniqueness before writing, but
// a concurrent writer can still lose the race, so the store's verdict
// is mapped to the same domain error.
func IsUniqueConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// IsForeignKeyConstraint reports whether err is a sqlite foreign-key
// violation.
func IsForeignKeyConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
