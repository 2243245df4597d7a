package markup

import (
	"errors"
	"fmt"
)

// Application error codes. These map failures to the categories the
// shell reports on: bad arguments, missing tags or pages, operations
// attempted before their preconditions hold, and fetch-layer trouble.
const (
	EINVALID      = "invalid"      // argument or grammar parse failure
	ENOTFOUND     = "not_found"    // requested tag or saved page absent
	EUNRECOGNIZED = "unrecognized" // unknown find sub-operation keyword
	EPRECONDITION = "precondition" // required session state not yet established
	EUNAVAILABLE  = "unavailable"  // transport-layer fetch failure
	ESERVER       = "server_error" // server-side (5xx) response
	EINTERNAL     = "internal"     // unexpected internal failure
)

// Error represents an application-specific error. Application errors can
// be unwrapped to extract machine-readable codes and human-readable
// messages.
type Error struct {
	// Code is machine-readable, for programmatic branching on error kind.
	Code string

	// Message is human-readable, shown to the shell user.
	Message string
}

// Error implements the error interface. Not meant for end users; use
// ErrorMessage for that.
func (e *Error) Error() string {
	return fmt.Sprintf("markup error: code=%s message=%s", e.Code, e.Message)
}

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
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
