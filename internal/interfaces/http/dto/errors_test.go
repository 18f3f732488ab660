package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}

	t.Run("unknown code falls back to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_SOMETHING_NEW"))
	})
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		domainCode string
		wireCode   string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"FORBIDDEN", ErrCodeForbidden},
		{"INVALID_STATE", ErrCodeInvalidState},
		{"INVALID_TYPE", ErrCodeInvalidInput},
		{"INVALID_EMAIL", ErrCodeInvalidInput},
		{"VALIDATION_ERROR", ErrCodeValidation},
		{"UNAUTHORIZED", ErrCodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.domainCode, func(t *testing.T) {
			assert.Equal(t, tt.wireCode, NormalizeErrorCode(tt.domainCode))
		})
	}

	t.Run("wire codes pass through unchanged", func(t *testing.T) {
		assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	})

	t.Run("unknown codes pass through unchanged", func(t *testing.T) {
		assert.Equal(t, "CUSTOM_CODE", NormalizeErrorCode("CUSTOM_CODE"))
	})
}

// Forbidden transitions surface as 403 while impossible state transitions
// surface as 422; the distinction matters to API clients.
func TestStatusEngineErrorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(NormalizeErrorCode("FORBIDDEN")))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(NormalizeErrorCode("INVALID_STATE")))
}
