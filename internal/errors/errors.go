package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error types for the site and portal
var (
	// Request errors
	ErrValidation  = errors.New("validation failed")
	ErrInvalidJSON = errors.New("invalid JSON body")
	ErrTooLarge    = errors.New("request body too large")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Store errors
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage error")

	// Outbound errors
	ErrUpstream      = errors.New("upstream request failed")
	ErrNotConfigured = errors.New("not configured")

	// General errors
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// HTTPStatus maps an error chain onto the status code the API reports for it.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case Is(err, ErrValidation), Is(err, ErrInvalidJSON):
		return http.StatusBadRequest
	case Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case Is(err, ErrUnauthorized), Is(err, ErrSessionNotFound), Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case Is(err, ErrNotFound):
		return http.StatusNotFound
	case Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
