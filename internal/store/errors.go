package store

import "errors"

// Sentinel errors returned by the note reader. Callers should use
// [errors.Is] to match against these values; the wrapped cause carries the
// driver detail.
var (
	// ErrResolvingStorePath is returned when no database location can be
	// determined (unreadable environment or unknown home directory).
	ErrResolvingStorePath = errors.New("error resolving note store path")

	// ErrOpeningStore is returned when the database file is missing,
	// unreadable or fails the connection ping.
	ErrOpeningStore = errors.New("error opening note store")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when scanning or iterating a multi-row
	// result fails.
	ErrScanningRows = errors.New("failed to scan note rows")
)
