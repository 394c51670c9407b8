package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that the registry store or another dependency failed.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the requested registry entry or route does not exist.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a session id, member or route in the request is missing or malformed.
	ErrBadParameter = "bad_parameter"
)

// MyError is a coded error returned by the routing service adapters and handlers.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is the wrapped cause; never serialized.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// NewInternalServerError wraps inner as internal_server_error unless inner is already a MyError, which is returned as is.
func NewInternalServerError(message string, inner error) *MyError {
	return newCodedError(ErrInternalServerError, message, inner)
}

// NewEntityNotFoundError wraps inner as entity_not_found unless inner is already a MyError.
func NewEntityNotFoundError(message string, inner error) *MyError {
	return newCodedError(ErrEntityNotFound, message, inner)
}

// NewBadParameterError wraps inner as bad_parameter unless inner is already a MyError.
func NewBadParameterError(message string, inner error) *MyError {
	return newCodedError(ErrBadParameter, message, inner)
}

func newCodedError(code, message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(code, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns err as *MyError, or nil if no MyError is in its chain.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// ToMyErrorCode returns the code of err, or "" if err is not a MyError.
func ToMyErrorCode(err error) string {
	if e := ToMyError(err); e != nil {
		return e.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	return ToMyErrorCode(err) == code && code != ""
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}
