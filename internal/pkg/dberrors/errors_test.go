package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "teachers_email_key"})

	assert.True(t, IsDuplicateConstraintError(err, "teachers_email_key"))
	assert.True(t, IsDuplicateConstraintError(err, ""))
	assert.False(t, IsDuplicateConstraintError(err, "modules_code_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), ""))
}

func TestIsForeignKeyAndCheckViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: "23514"}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))
}
