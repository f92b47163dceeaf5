package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP mapping. Handlers switch on the kind,
// never on message text.
type Kind int

const (
	// KindInternal is the zero value so unclassified errors map to 500.
	KindInternal Kind = iota
	// KindValidation marks missing or malformed input fields.
	KindValidation
	// KindUnauthenticated marks missing, invalid or expired credentials.
	KindUnauthenticated
	// KindNotFound marks an entity that is absent or not owned by the caller.
	// Ownership violations deliberately report the same kind as true absence.
	KindNotFound
	// KindConflict marks uniqueness violations: duplicate email, duplicate
	// plate, or an already-taken appointment slot.
	KindConflict
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// Validation builds a validation error with optional per-field details.
func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Unauthenticated builds an authentication error.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// NotFound builds a not-found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a conflict error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal builds an internal error.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf extracts the kind of err, defaulting to KindInternal for
// unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FieldsOf extracts per-field details of err, if any.
func FieldsOf(err error) []FieldError {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// HTTPStatus maps a kind to its HTTP status code. This is the single place
// the mapping lives.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
