package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/migrations"
)

// Dialect names a supported SQL backend. The values double as goose dialect
// names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DB is a database handle tagged with its dialect.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an open connection. It is used by the dialect constructors and
// by tests that supply a mocked connection.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) (*DB, error) {
	if dialect != DialectSQLite && dialect != DialectPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
	return &DB{DB: conn, dialect: dialect, logger: log}, nil
}

// Dialect reports the backend this handle talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded settings schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// statementBuilder returns a squirrel builder with the dialect's placeholders.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
