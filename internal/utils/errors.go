package utils

import (
	"errors"
	"net/http"
)

// Sentinel errors the repository layer translates storage outcomes into.
// ErrDuplicate covers every unique-constraint violation; services decide
// which business conflict it represents.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// ErrorKind is the stable machine-readable failure classification clients
// branch on. The human-readable message is localized separately.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "NOT_FOUND"
	KindForbidden      ErrorKind = "FORBIDDEN"
	KindConflict       ErrorKind = "CONFLICT"
	KindInvalidState   ErrorKind = "INVALID_STATE"
	KindInvalidRequest ErrorKind = "INVALID_REQUEST"
	KindUnauthorized   ErrorKind = "UNAUTHORIZED"
	KindInternal       ErrorKind = "INTERNAL_ERROR"
)

// AppError is the error shape services return for expected, user-correctable
// outcomes. MessageKey is resolved against the message catalog at the HTTP
// boundary.
type AppError struct {
	Kind       ErrorKind
	MessageKey string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.MessageKey + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.MessageKey
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the status code of the public API
// contract. Conflict-class failures surface as 400 on this API.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict, KindInvalidState, KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NotFoundError(messageKey string) *AppError {
	return &AppError{Kind: KindNotFound, MessageKey: messageKey}
}

func ForbiddenError(messageKey string) *AppError {
	return &AppError{Kind: KindForbidden, MessageKey: messageKey}
}

func ConflictError(messageKey string) *AppError {
	return &AppError{Kind: KindConflict, MessageKey: messageKey}
}

func InvalidStateError(messageKey string) *AppError {
	return &AppError{Kind: KindInvalidState, MessageKey: messageKey}
}

func InvalidRequestError(messageKey string) *AppError {
	return &AppError{Kind: KindInvalidRequest, MessageKey: messageKey}
}

func UnauthorizedError(messageKey string) *AppError {
	return &AppError{Kind: KindUnauthorized, MessageKey: messageKey}
}

func InternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, MessageKey: "internal_error", Err: err}
}
