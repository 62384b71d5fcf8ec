package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// Error codes carried in the response envelope.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL_ERROR"
)

// DomainError is the error shape the HTTP layer knows how to render.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string, details map[string]any) error {
	return &DomainError{Code: CodeValidationFailed, Message: message, HTTPStatus: http.StatusBadRequest, Details: details}
}

func NewNotFound(resource string, details map[string]any) error {
	return &DomainError{Code: CodeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound, Details: details}
}

func NewUnauthorized(message string) error {
	return &DomainError{Code: CodeUnauthorized, Message: message, HTTPStatus: http.StatusUnauthorized}
}

func NewForbidden(message string) error {
	return &DomainError{Code: CodeForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

func NewConflict(message string, details map[string]any) error {
	return &DomainError{Code: CodeConflict, Message: message, HTTPStatus: http.StatusConflict, Details: details}
}

func NewInternalError(err error) error {
	return &DomainError{Code: CodeInternal, Message: "internal server error", HTTPStatus: http.StatusInternalServerError, Err: err}
}

// ToDomainError coerces any error into a DomainError. Missing rows become
// 404s; everything else unexpected collapses to a generic 500 so internal
// detail never reaches the client.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	switch {
	case errors.As(err, &domainErr):
		return domainErr
	case errors.Is(err, pgx.ErrNoRows):
		return &DomainError{Code: CodeNotFound, Message: "resource not found", HTTPStatus: http.StatusNotFound}
	default:
		return &DomainError{Code: CodeInternal, Message: "internal server error", HTTPStatus: http.StatusInternalServerError, Err: err}
	}
}
