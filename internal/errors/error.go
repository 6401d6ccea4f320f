package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	KindNetwork  Kind = "network"
	KindStatus   Kind = "status"
	KindDecode   Kind = "decode"
	KindConfig   Kind = "config"
	KindProtocol Kind = "protocol"
	KindSurface  Kind = "surface"
	KindInvalid  Kind = "invalid"
)

// Error is a structured error with a code, a user-facing message and the
// request it came from.
type Error struct {
	// Code is a unique error identifier (e.g., "W001").
	Code string

	// Kind is the error class.
	Kind Kind

	// Message is the user-facing description.
	Message string

	// Detail is a longer explanation for logs and the CLI.
	Detail string

	// Method, URL and Status identify the HTTP exchange, when there was one.
	Method string
	URL    string
	Status int

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface. It returns the user-facing message
// alone so that callers can show it verbatim.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithMessage replaces the user-facing message.
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithRequest records the HTTP exchange.
func (e *Error) WithRequest(method, url string, status int) *Error {
	e.Method = method
	e.URL = url
	e.Status = status
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// String describes the error for logs, including code and cause.
func (e *Error) String() string {
	s := e.Message
	if e.Code != "" {
		s = fmt.Sprintf("%s: %s", e.Code, s)
	}
	if e.Method != "" {
		s = fmt.Sprintf("%s (%s %s", s, e.Method, e.URL)
		if e.Status != 0 {
			s = fmt.Sprintf("%s -> %d", s, e.Status)
		}
		s += ")"
	}
	if e.Wrapped != nil {
		s = fmt.Sprintf("%s: %v", s, e.Wrapped)
	}
	return s
}

// New creates an Error from a registered code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:    code,
		Kind:    template.Kind,
		Message: template.Message,
		Detail:  template.Detail,
	}
}

// Newf creates an Error with a formatted message and no code.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error. Errors that already are an
// *Error are returned unchanged.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	return New(code).Wrap(err)
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err's chain holds an *Error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

// Is is errors.Is, re-exported so callers need a single errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }
