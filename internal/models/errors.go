package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies an application failure for response shaping.
// Classification happens at the boundary closest to the failure's
// origin; the server's ErrorHandler is the only place a kind is turned
// into an HTTP response.
type ErrorKind string

const (
	KindMalformedID     ErrorKind = "MALFORMED_ID"
	KindValidation      ErrorKind = "VALIDATION_ERROR"
	KindDuplicateKey    ErrorKind = "DUPLICATE_KEY"
	KindInvalidToken    ErrorKind = "INVALID_TOKEN"
	KindUnauthenticated ErrorKind = "UNAUTHENTICATED"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInternal        ErrorKind = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized API error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AppError is a classified application error.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindMalformedID, KindValidation, KindDuplicateKey, KindInvalidToken:
		return fiber.StatusBadRequest
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func NewMalformedIDError() *AppError {
	return &AppError{
		Kind:    KindMalformedID,
		Message: "malformatted id",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: message,
	}
}

// NewDuplicateKeyError reports a uniqueness violation, naming the field.
func NewDuplicateKeyError(field string) *AppError {
	return &AppError{
		Kind:    KindDuplicateKey,
		Message: fmt.Sprintf("expected %s to be unique", field),
	}
}

func NewInvalidTokenError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidToken,
		Message: message,
	}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Kind:    KindUnauthenticated,
		Message: message,
	}
}

func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: "internal server error",
		Err:     err,
	}
}
