package pkg

import (
	"errors"
	"net/http"
)

// ErrorKind classifies every failure a manager can report. Nothing else
// escapes the usecase boundary: unexpected persistence failures degrade to
// KindInternal with a generic message.
type ErrorKind string

const (
	KindInvalidArgument    ErrorKind = "INVALID_ARGUMENT"
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindConflict           ErrorKind = "CONFLICT"
	KindPreconditionFailed ErrorKind = "PRECONDITION_FAILED"
	KindInternal           ErrorKind = "INTERNAL"
)

// AppError is the structured failure outcome of a manager operation.
type AppError struct {
	Kind        ErrorKind
	Message     string
	FieldErrors map[string][]string
	Err         error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithField appends a per-field message and returns the same error, so
// constructors chain: NewConflict("...").WithField("nombre", "...").
func (e *AppError) WithField(field, message string) *AppError {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string][]string)
	}
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
	return e
}

// HTTPStatus maps the kind to the status the HTTP adapter should answer with.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindPreconditionFailed:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func NewInvalidArgument(message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewPreconditionFailed(message string) *AppError {
	return &AppError{Kind: KindPreconditionFailed, Message: message}
}

// NewInternal wraps an unexpected failure behind a caller-safe message. The
// cause stays available through Unwrap for logging, never for responses.
func NewInternal(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: "Error interno del servidor. Inténtelo de nuevo.",
		Err:     err,
	}
}

// FromError returns err as *AppError, degrading anything unclassified to
// KindInternal so no raw error crosses the manager boundary.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}
