package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes used by the repositories
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint. An empty constraint name matches any unique violation.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsCheckViolation checks if the error is a PostgreSQL CHECK constraint violation
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation
}

// IsNoRows reports whether a single-row query found nothing
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
