package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate value")

// DuplicateError names the field whose unique constraint rejected a write.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// uniqueViolation is the postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// constraintFields maps unique constraint names to form field names.
var constraintFields = map[string]string{
	"users_username_key": "username",
	"users_email_key":    "email",
}

// translate maps driver errors onto the package's sentinel errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		field := constraintFields[pqErr.Constraint]
		if field == "" {
			field = pqErr.Constraint
		}
		return &DuplicateError{Field: field}
	}
	return err
}
