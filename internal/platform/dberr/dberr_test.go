// Copyright (c) 2026 Chaldea. All rights reserved.

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/dberr"
)

func pgError(code, constraint, message string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint, Message: message}
}

/*
TestWrap_Classification maps every SQLSTATE class the schema can produce to
its application error code.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND"},
		{"unique", pgError(pgerrcode.UniqueViolation, "master_nickname_key", ""), "CONFLICT"},
		{"foreign_key", pgError(pgerrcode.ForeignKeyViolation, "contract_master_id_fkey", ""), "FK_VIOLATION"},
		{"check", pgError(pgerrcode.CheckViolation, "master_level_check", ""), "VALIDATION_ERROR"},
		{"raise_exception", pgError(pgerrcode.RaiseException, "", "servant already has an active contract"), "BUSINESS_RULE"},
		{"invalid_text", pgError(pgerrcode.InvalidTextRepresentation, "", `invalid input syntax for type integer: "high"`), "VALIDATION_ERROR"},
		{"unknown", errors.New("connection reset"), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
		})
	}
}

/*
TestWrap_Nil passes nil through untouched so stores can wrap unconditionally.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_RaiseExceptionMessage keeps the trigger's own message, which is the
client-facing business rule text.
*/
func TestWrap_RaiseExceptionMessage(t *testing.T) {
	err := dberr.Wrap(pgError(pgerrcode.RaiseException, "", "servant already has an active contract"), "create_contract")
	assert.Equal(t, "servant already has an active contract", err.Error())
}

/*
TestConstraintName_Extraction reads the constraint through wrap chains, which
is how stores decide which side of a composite foreign key failed.
*/
func TestConstraintName_Extraction(t *testing.T) {
	base := pgError(pgerrcode.ForeignKeyViolation, "contract_servant_id_fkey", "")
	wrapped := fmt.Errorf("insert contract: %w", base)

	assert.Equal(t, "contract_servant_id_fkey", dberr.ConstraintName(wrapped))
	assert.True(t, dberr.IsForeignKeyViolation(wrapped))
	assert.False(t, dberr.IsUniqueViolation(wrapped))
	assert.Empty(t, dberr.ConstraintName(errors.New("plain")))
}

/*
TestIsHelpers verify the single-code predicates.
*/
func TestIsHelpers(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(pgError(pgerrcode.UniqueViolation, "", "")))
	assert.True(t, dberr.IsCheckViolation(pgError(pgerrcode.CheckViolation, "", "")))
	assert.True(t, dberr.IsRaisedException(pgError(pgerrcode.RaiseException, "", "")))
	assert.False(t, dberr.IsRaisedException(errors.New("nope")))
}
