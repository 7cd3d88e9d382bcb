package store

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrInvalidInput means an argument was empty or malformed; nothing
	// touched the database.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means a referenced film or round does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateItem means a film with the same title (ignoring case)
	// already exists.
	ErrDuplicateItem = errors.New("film already exists")

	// ErrDuplicateVote means the participant already cast a ballot in the
	// round, regardless of which film it targeted.
	ErrDuplicateVote = errors.New("already voted in this round")

	// ErrNoActiveRound means the store was never bootstrapped. Unreachable
	// in normal operation; treat as fatal.
	ErrNoActiveRound = errors.New("no active round")
)

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err is a foreign-key failure from
// either supported driver.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
