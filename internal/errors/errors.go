package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a resource id does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserInactive is returned when the account is disabled.
	ErrUserInactive = errors.New("user is inactive")
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrDuplicateName is returned on unique-name collisions (role, action, branch, content title).
	ErrDuplicateName = errors.New("name already exists")
	// ErrDuplicateEmail is returned when a user-info email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateIdentification is returned when a (cardType, cardCode) pair
	// is already registered to another person.
	ErrDuplicateIdentification = errors.New("identification already registered")
	// ErrTokenExpired is returned for structurally valid but expired tokens.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for tampered or malformed tokens.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrForbidden is returned when an authenticated user lacks a required role.
	ErrForbidden = errors.New("forbidden")
	// ErrPartialDelete is returned when attachments could not be removed from
	// the object store; the owning row is left in place.
	ErrPartialDelete = errors.New("partial delete: attachments not removed")
	// ErrValidation is returned for payloads that fail domain validation.
	ErrValidation = errors.New("validation failed")
)

// StatusText maps an HTTP status to the fixed envelope code string.
func StatusText(status int) string {
	switch status {
	case http.StatusOK:
		return "OK"
	case http.StatusCreated:
		return "Created"
	case http.StatusBadRequest:
		return "BadRequest"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusGatewayTimeout:
		return "Timeout"
	case http.StatusInternalServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// HTTPStatus maps a domain error to the HTTP status it should surface as.
// Unknown errors are server errors.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserInactive), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUserExists), errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateIdentification),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
