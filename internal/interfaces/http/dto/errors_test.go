package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"invalid credentials", ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{"account locked", ErrCodeAccountLocked, http.StatusLocked},
		{"token revoked", ErrCodeTokenRevoked, http.StatusUnauthorized},
		{"credit refused", ErrCodeCreditRefused, http.StatusUnprocessableEntity},
		{"duplicate", ErrCodeAlreadyExists, http.StatusConflict},
		{"internal", ErrCodeInternal, http.StatusInternalServerError},
		{"unknown code falls back to 500", "ERR_NOT_A_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"domain not found", "NOT_FOUND", ErrCodeNotFound},
		{"domain duplicate name", "DUPLICATE_NAME", ErrCodeAlreadyExists},
		{"domain invalid amount", "INVALID_AMOUNT", ErrCodeValidation},
		{"domain credit refused", "CREDIT_REFUSED", ErrCodeCreditRefused},
		{"domain account locked", "ACCOUNT_LOCKED", ErrCodeAccountLocked},
		{"domain token expired", "TOKEN_EXPIRED", ErrCodeTokenExpired},
		{"already normalized", ErrCodeNotFound, ErrCodeNotFound},
		{"unknown passes through", "SOMETHING_ELSE", "SOMETHING_ELSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestDomainMappingTargetsHaveStatuses(t *testing.T) {
	// Every normalized code must resolve to an explicit HTTP status,
	// otherwise domain errors would silently surface as 500s.
	for domainCode, apiCode := range DomainErrorCodeMapping {
		_, ok := ErrorCodeHTTPStatus[apiCode]
		assert.True(t, ok, "mapping target %s for %s has no HTTP status", apiCode, domainCode)
	}
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("Validation failed", "req-123", []ValidationDetail{
		{Field: "name", Message: "name is required"},
	})

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "name", resp.Error.Details[0].Field)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
