// Package errors is the project error type. Import it as perr.
//
// Every failure that can reach a client is an *Error carrying an ErrorCode.
// The code alone decides the HTTP status and how much of the error the
// client may see; see HTTP
package errors

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies a failure
type ErrorCode uint16

// Codes. Only NotFound, Validation and JSON are client errors; the rest are
// server faults whose detail stays in the logs
const (
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a recovered handler panic
	ErrorCodePanic
	// ErrorCodeUnavailable is a database that is starting, stopping or read only
	ErrorCodeUnavailable
	// ErrorCodeInvalidArgument is a statement rejected by a constraint or type check
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is bad path, query or body input
	ErrorCodeValidation
	// ErrorCodeJSON is a body that is not the expected JSON
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeDuplicateKey
	// ErrorCodeDB is any other storage failure
	ErrorCodeDB
	// ErrorCodeIntegrity is a write that touched an unexpected number of rows
	ErrorCodeIntegrity
)

// ErrNotFound is the bare not found error
var ErrNotFound = New(ErrorCodeNotFound, MsgNotFound)

// Error is a classified error. msg is for developers; field and comment
// describe a 400 for the client; op labels the failing operation in logs
type Error struct {
	orig    error
	msg     string
	code    ErrorCode
	field   string
	comment string
	op      string
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.orig != nil:
		return e.msg + ": " + e.orig.Error()
	default:
		return e.msg
	}
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error { return e.orig }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending parameter or body field
func (e *Error) Field() string { return e.field }

// Comment returns the expected type hint of a decode failure
func (e *Error) Comment() string { return e.comment }

// Op returns the operation label
func (e *Error) Op() string { return e.op }

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap classifies orig under code with msg
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// NotFoundf returns a not found error; clients only ever see MsgNotFound
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// JSONErrf returns a body error whose message the client sees
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a recovered panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Integrityf returns an integrity anomaly error
func Integrityf(format string, a ...any) error { return Newf(ErrorCodeIntegrity, format, a...) }

// Internalf returns an unclassified server error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// InvalidPath returns the 400 for a path or query parameter that did not
// decode as expected, e.g. "integer"
func InvalidPath(path, expected string) error {
	return &Error{
		code:    ErrorCodeValidation,
		msg:     MsgInvalidPath,
		field:   path,
		comment: "expected type: " + expected,
	}
}

// with returns a copy of err's *Error changed by fn; other errors pass through
func with(err error, fn func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	fn(&c)
	return &c
}

// WithField names the offending field on a copy of err
func WithField(err error, field string) error {
	return with(err, func(e *Error) { e.field = field })
}

// WithOp labels a copy of err with the failing operation
func WithOp(err error, op string) error {
	return with(err, func(e *Error) { e.op = op })
}

// As finds the *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// IsNotFound reports whether err carries the not found code
func IsNotFound(err error) bool { return IsCode(err, ErrorCodeNotFound) }
