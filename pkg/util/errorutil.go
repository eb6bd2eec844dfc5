package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
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

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewMissingField(field, message string) error {
	return NewDomainError("MISSING_FIELD", message, http.StatusBadRequest, map[string]any{"field": field})
}

func NewInvalidEmail(message string) error {
	return NewDomainError("INVALID_EMAIL", message, http.StatusBadRequest, nil)
}

func NewPersonalEmailRejected(message string) error {
	return NewDomainError("PERSONAL_EMAIL_REJECTED", message, http.StatusBadRequest, nil)
}

func NewInvalidAnswers(message string) error {
	return NewDomainError("INVALID_ANSWERS", message, http.StatusBadRequest, nil)
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewDownstreamUnavailable reports that the external store or notifier is
// unreachable or misconfigured. The message carries a remediation hint.
func NewDownstreamUnavailable(message string, err error) error {
	return &DomainError{
		Code:       "DOWNSTREAM_UNAVAILABLE",
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
