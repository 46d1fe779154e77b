package store

import "errors"

var (
	// ErrNotMigrated is returned when the settings table does not exist,
	// usually because migrations were not applied to the database.
	ErrNotMigrated = errors.New("settings schema is not migrated")

	// ErrUnknownDSN is returned by Open when the DSN matches no backend.
	ErrUnknownDSN = errors.New("unrecognized storage DSN")

	// ErrUnsupportedDialect is returned for SQL dialects other than
	// sqlite3 and postgres.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")

	// ErrCorruptedValue is returned by the encrypted store when a stored
	// value fails authentication or does not decode to its kind.
	ErrCorruptedValue = errors.New("stored value is corrupted")
)

// Low-level database operation errors, wrapped with the driver error.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a settings row fails.
	ErrScanningRow = errors.New("failed to scan settings row")
)
