// Copyright (c) 2026 Chaldea. All rights reserved.

/*
Package dberr provides a bridge between low-level PostgreSQL errors and
higher-level application errors.

It classifies errors by SQLSTATE (via jackc/pgerrcode) and exposes the
violated constraint name so stores can tell WHICH rule failed, e.g. the
master side vs the servant side of a composite foreign key.

Translation table:

  - no rows            -> NOT_FOUND
  - unique_violation   -> CONFLICT
  - check_violation    -> VALIDATION_ERROR
  - foreign_key        -> FK_VIOLATION
  - raise_exception    -> BUSINESS_RULE (trigger-enforced domain rules)
  - data exceptions    -> VALIDATION_ERROR (malformed values on the wire)
  - anything else      -> INTERNAL_ERROR
*/
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/velkorra/chaldea/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// PgError extracts the [*pgconn.PgError] from err's chain, or nil.
func PgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// ConstraintName returns the name of the violated constraint, or "".
func ConstraintName(err error) string {
	if pgErr := PgError(err); pgErr != nil {
		return pgErr.ConstraintName
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	pgErr := PgError(err)
	return pgErr != nil && pgErr.Code == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	pgErr := PgError(err)
	return pgErr != nil && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// IsCheckViolation reports whether err is a check constraint violation.
func IsCheckViolation(err error) bool {
	pgErr := PgError(err)
	return pgErr != nil && pgErr.Code == pgerrcode.CheckViolation
}

// IsRaisedException reports whether err was raised by a trigger/function
// via RAISE EXCEPTION. Triggers carry domain rules (e.g. the single active
// contract rule), so these are surfaced as BUSINESS_RULE, never as 500s.
func IsRaisedException(err error) bool {
	pgErr := PgError(err)
	return pgErr != nil && pgErr.Code == pgerrcode.RaiseException
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type. Stores that need constraint-specific messages should classify
// with the Is* helpers first and fall back to Wrap for everything else.
//
// The action string names the failed operation for server-side logs only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE classification
	if pgErr := PgError(err); pgErr != nil {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return apperr.Conflict("Resource already exists")
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return apperr.ForeignKey("Referenced resource does not exist")
		case pgErr.Code == pgerrcode.CheckViolation:
			return apperr.ValidationError("Value rejected by constraint " + pgErr.ConstraintName)
		case pgErr.Code == pgerrcode.RaiseException:
			// The trigger message is written for clients.
			return apperr.BusinessRule(pgErr.Message)
		case pgerrcode.IsDataException(pgErr.Code):
			return apperr.ValidationError("Invalid data: " + pgErr.Message)
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates an unexpected database error with the failed action
// so server-side logs can locate the query without a stack trace.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }

func (e *actionError) Unwrap() error { return e.cause }
