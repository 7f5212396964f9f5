package apperrors

import (
	"errors"
	"fmt"
)

// Error is the application error taxonomy. Every operation surfaces failures
// as one of these kinds; the HTTP layer maps kinds to status codes.
type Error struct {
	Kind   Kind
	Detail string
}

// Kind is the machine-readable error category.
type Kind string

const (
	KindValidation     Kind = "validation_error"
	KindNotFound       Kind = "not_found"
	KindAuthentication Kind = "authentication_error"
	KindAuthorization  Kind = "authorization_error"
	KindConflict       Kind = "conflict"
)

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// NewValidation reports a malformed or incomplete request.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Detail: fmt.Sprintf(format, args...)}
}

// NewNotFound reports an unknown order, catalog item or driver.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

// NewAuthentication reports missing or invalid credentials.
func NewAuthentication(detail string) *Error {
	return &Error{Kind: KindAuthentication, Detail: detail}
}

// NewAuthorization reports a valid identity with an insufficient role.
func NewAuthorization(detail string) *Error {
	return &Error{Kind: KindAuthorization, Detail: detail}
}

// NewConflict reports an illegal state transition.
func NewConflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Detail: fmt.Sprintf(format, args...)}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
