package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionDeniedCarriesReason(t *testing.T) {
	err := NewPermissionDenied("Only admins can delete users.")

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PERMISSION_DENIED", domainErr.Code)
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	assert.Equal(t, "Only admins can delete users.", domainErr.Message)
	assert.True(t, IsPermissionDenied(err))
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("pgx: connection refused")
	err := NewInternalError(cause)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, "internal server error", domainErr.Message)
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsPermissionDenied(err))
}

func TestToDomainErrorCollapsesUnknownErrors(t *testing.T) {
	domainErr := ToDomainError(errors.New("store unreachable"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestToDomainErrorPassesDomainErrorsThrough(t *testing.T) {
	original := NewValidationError("title required", map[string]any{"field": "title"})
	domainErr := ToDomainError(original)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, map[string]any{"field": "title"}, domainErr.Details)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
