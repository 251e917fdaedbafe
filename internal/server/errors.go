// Package server provides the HTTP REST API for the report explorer.
package server

import (
	"fmt"
	"net/http"
)

// ErrNotAllowed indicates the email is not on the registration allow-list
type ErrNotAllowed struct {
	Email string
}

func (e *ErrNotAllowed) Error() string {
	return fmt.Sprintf("registration not allowed for email: %s", e.Email)
}

// ErrDuplicateUser indicates the username is already taken
type ErrDuplicateUser struct {
	Username string
}

func (e *ErrDuplicateUser) Error() string {
	return fmt.Sprintf("username already exists: %s", e.Username)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrReportNotFound indicates no report document matches the requested ID
type ErrReportNotFound struct {
	ID string
}

func (e *ErrReportNotFound) Error() string {
	return fmt.Sprintf("report not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrNotAllowed:
		return http.StatusForbidden
	case *ErrDuplicateUser:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrReportNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
