package wcagref

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wcagref error: code=%s message=%s", e.Code, e.Message)
}

// Lookup errors. Returned values are these exact pointers so callers can
// match them with errors.Is.
var (
	ErrInvalidVersion     = &Error{Code: EINVALID, Message: "requested WCAG version isn't valid"}
	ErrChapterNotFound    = &Error{Code: ENOTFOUND, Message: "requested chapter doesn't exist"}
	ErrSectionNotFound    = &Error{Code: ENOTFOUND, Message: "requested section doesn't exist"}
	ErrSubsectionNotFound = &Error{Code: ENOTFOUND, Message: "requested subsection doesn't exist"}
	ErrTechniqueNotFound  = &Error{Code: ENOTFOUND, Message: "requested WCAG technique doesn't exist"}
)

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
