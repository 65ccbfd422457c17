package utils

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrDeviceFailure      = errors.New("device request failed")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationError carries the first failed rule of the input pipeline.
// The message is user-facing and returned verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
