package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes for the glyph extraction pipeline. Every failure is terminal
// and maps onto exactly one of these; there are no retries.
const (
	NOERROR     int = 0
	EUSAGE      int = 120 // wrong command line arguments
	EENGINE     int = 121 // font engine failed to initialize
	EFONTFORMAT int = 122 // font file opened, but format unrecognized
	EFONTOPEN   int = 123 // font file could not be opened or parsed
	ENOGLYPH    int = 124 // character has no mapped glyph
	EGLYPHLOAD  int = 125 // engine failed to load the glyph
	ENOTOUTLINE int = 126 // glyph is not in an outline format
	EDECOMPOSE  int = 127 // outline decomposition failed
	EINTERNAL   int = 128 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EUSAGE:
		return "usage error"
	case EENGINE:
		return "font engine initialization failed"
	case EFONTFORMAT:
		return "unsupported font format"
	case EFONTOPEN:
		return "cannot open font"
	case ENOGLYPH:
		return "glyph not found"
	case EGLYPHLOAD:
		return "cannot load glyph"
	case ENOTOUTLINE:
		return "glyph is not an outline"
	case EDECOMPOSE:
		return "outline decomposition failed"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks Code and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints a one-line diagnostic for err to stderr.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
