package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("pg: could not connect to the benchmark database")
	ErrEmptyConnectionString    = errors.New("pg: DATABASE_URL is not set")
	ErrHealthcheckFailed        = errors.New("pg: database did not answer the ping")
	ErrFailedToParseDBConfig    = errors.New("pg: invalid DATABASE_URL")
	ErrFailedToApplyMigrations  = errors.New("pg: schema migration failed")
	ErrNoMigrations             = errors.New("pg: migration source is nil")
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsForeignKeyViolationError detects references to missing rows (SQLSTATE 23503).
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
