// Package apperr defines the error kinds surfaced by the services and mapped
// to HTTP responses by the handlers.
package apperr

import "errors"

// Code is a machine-readable error kind.
type Code string

const (
	CodeInternal           Code = "INTERNAL"
	CodeValidation         Code = "VALIDATION"
	CodeUserExists         Code = "USER_EXISTS"
	CodeDuplicateEmail     Code = "DUPLICATE_EMAIL"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeInvalidSession     Code = "INVALID_SESSION"
	CodeUserNotFound       Code = "USER_NOT_FOUND"
	CodeMissingIdentifiers Code = "MISSING_IDENTIFIERS"
)

// Error carries a Code, a client-facing message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Kind sentinels for errors.Is checks.
var (
	ErrValidation         = New(CodeValidation, "validation failed")
	ErrUserExists         = New(CodeUserExists, "User already exists")
	ErrDuplicateEmail     = New(CodeDuplicateEmail, "duplicate email")
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Wrong ID or Password")
	ErrUnauthenticated    = New(CodeUnauthenticated, "Please login")
	ErrInvalidSession     = New(CodeInvalidSession, "invalid session")
	ErrUserNotFound       = New(CodeUserNotFound, "No user found")
	ErrMissingIdentifiers = New(CodeMissingIdentifiers, "Missing required identifiers from resume")
)
