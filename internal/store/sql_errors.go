package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyError maps driver errors onto package sentinels. Errors it does
// not recognise are wrapped with fallback.
func classifyError(err error, fallback error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("%w: %w", ErrNotMigrated, err)
	}
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w: %w", ErrNotMigrated, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
