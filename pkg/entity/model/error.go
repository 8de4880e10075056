package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error codes exposed to clients through the extensions of an error.
const (
	NotFoundError       = "NOT_FOUND"
	ConflictError       = "CONFLICT"
	DBError             = "DB_ERROR"
	InvalidParamError   = "INVALID_PARAMETER"
	InternalServerError = "INTERNAL_SERVER_ERROR"
)

// Error is an application error carrying a client facing code.
type Error struct {
	Code       string
	Message    string
	Extensions map[string]interface{}
	err        error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.err.Error())
	}
	return e.Message
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.err
}

func newError(code string, message string, ext map[string]interface{}, cause error) *Error {
	if ext == nil {
		ext = map[string]interface{}{}
	}
	ext["code"] = code
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &Error{
		Code:       code,
		Message:    message,
		Extensions: ext,
		err:        cause,
	}
}

// NewNotFoundError returns an error for a todo id without a stored record.
func NewNotFoundError(e error, id interface{}) error {
	return newError(
		NotFoundError,
		fmt.Sprintf("Todo with ID %v was not found.", id),
		map[string]interface{}{"id": fmt.Sprint(id)},
		e,
	)
}

// NewConflictError returns an error for a write that lost a race with another writer.
func NewConflictError(e error, id interface{}) error {
	return newError(
		ConflictError,
		fmt.Sprintf("Todo with ID %v was modified concurrently.", id),
		map[string]interface{}{"id": fmt.Sprint(id)},
		e,
	)
}

// NewDBError wraps a store failure.
func NewDBError(e error) error {
	return newError(DBError, "database error", nil, e)
}

// NewInvalidParamError returns an error for an argument the transport could not decode.
func NewInvalidParamError(value map[string]interface{}) error {
	return newError(InvalidParamError, fmt.Sprintf("invalid parameter: %v", value), value, nil)
}

// NewInternalServerError wraps an unexpected failure.
func NewInternalServerError(e error) error {
	return newError(InternalServerError, "internal server error", nil, e)
}

// IsNotFoundError reports whether err is a not found error.
func IsNotFoundError(err error) bool {
	return hasCode(err, NotFoundError)
}

// IsConflictError reports whether err is a conflict error.
func IsConflictError(err error) bool {
	return hasCode(err, ConflictError)
}

// IsDBError reports whether err is a store failure.
func IsDBError(err error) bool {
	return hasCode(err, DBError)
}

func hasCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
