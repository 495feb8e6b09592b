package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	assert.Equal(t, "OK", StatusText(http.StatusOK))
	assert.Equal(t, "Created", StatusText(http.StatusCreated))
	assert.Equal(t, "BadRequest", StatusText(http.StatusBadRequest))
	assert.Equal(t, "Unauthorized", StatusText(http.StatusUnauthorized))
	assert.Equal(t, "Forbidden", StatusText(http.StatusForbidden))
	assert.Equal(t, "NotFound", StatusText(http.StatusNotFound))
	assert.Equal(t, "Timeout", StatusText(http.StatusGatewayTimeout))
	assert.Equal(t, "ServerError", StatusText(http.StatusInternalServerError))
	assert.Equal(t, "Unknown", StatusText(http.StatusTeapot))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrTokenInvalid, http.StatusUnauthorized},
		{ErrUserInactive, http.StatusForbidden},
		{ErrForbidden, http.StatusForbidden},
		{ErrUserExists, http.StatusBadRequest},
		{ErrDuplicateName, http.StatusBadRequest},
		{ErrDuplicateEmail, http.StatusBadRequest},
		{ErrDuplicateIdentification, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrPartialDelete, http.StatusInternalServerError},
		{fmt.Errorf("db gone"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create action: %w", ErrDuplicateName)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
}
