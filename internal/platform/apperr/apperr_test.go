// Copyright (c) 2026 Chaldea. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/platform/apperr"
)

/*
TestConstructors_StatusMapping verifies each constructor maps to the
documented HTTP status and machine code.
*/
func TestConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantCode   string
		wantStatus int
	}{
		{"not_found", apperr.NotFound("Servant"), "NOT_FOUND", http.StatusNotFound},
		{"not_found_text", apperr.NotFoundText("no picture"), "NOT_FOUND", http.StatusNotFound},
		{"conflict", apperr.Conflict("Contract already exists"), "CONFLICT", http.StatusConflict},
		{"business_rule", apperr.BusinessRule("Servant already has an active contract"), "BUSINESS_RULE", http.StatusConflict},
		{"foreign_key", apperr.ForeignKey("Master does not exist"), "FK_VIOLATION", http.StatusUnprocessableEntity},
		{"validation", apperr.ValidationError("Validation failed"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"unsupported_media", apperr.UnsupportedMedia("Unsupported file type"), "UNSUPPORTED_MEDIA", http.StatusUnsupportedMediaType},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

/*
TestNotFound_Message checks the resource name is embedded in the message.
*/
func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "Master not found", apperr.NotFound("Master").Error())
	assert.Equal(t, "no picture", apperr.NotFoundText("no picture").Error())
}

/*
TestInternal_HidesCause ensures the wrapped cause never leaks into the
client-facing message but remains reachable for logging.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: syntax error at line 1")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "syntax error")
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_TraversesWrapChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_TraversesWrapChain(t *testing.T) {
	inner := apperr.Conflict("Master with this nickname already exists")
	wrapped := fmt.Errorf("create master: %w", inner)

	extracted := apperr.As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, "CONFLICT", extracted.Code)
	assert.True(t, apperr.IsAppError(wrapped))

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
}
