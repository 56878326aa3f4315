package element

import (
	"errors"
	"strings"
)

// Kind is the stable symbolic identifier of a failure.
type Kind string

const (
	KindMultipleErrors   Kind = "multiple_errors"
	KindEmptyField       Kind = "empty_field"
	KindInvalidArguments Kind = "invalid_arguments"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrMultipleErrors   = &Error{Kind: KindMultipleErrors, Message: "multiple errors"}
	ErrEmptyField       = &Error{Kind: KindEmptyField, Message: "empty field"}
	ErrInvalidArguments = &Error{Kind: KindInvalidArguments, Message: "invalid arguments"}
)

// Error is the only error type produced while building or validating
// elements. An error of kind KindMultipleErrors is a collection: it owns an
// ordered, flat list of child errors.
type Error struct {
	Kind    Kind
	Message string

	errs []error
}

// NewError returns a single failure of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewMultipleError returns an empty collection ready to receive failures.
func NewMultipleError() *Error {
	return &Error{Kind: KindMultipleErrors, Message: "multiple errors"}
}

func (e *Error) Error() string {
	if e.Kind != KindMultipleErrors {
		return e.Message
	}
	if len(e.errs) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		parts = append(parts, err.Error())
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Is matches sentinels and other errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Unwrap exposes the children of a collection so that errors.Is and
// errors.As can look inside it.
func (e *Error) Unwrap() []error {
	if e.Kind != KindMultipleErrors {
		return nil
	}
	return e.errs
}

// Add appends err to the collection. Collections are spliced in rather than
// nested, so the list stays flat. Nil errors are ignored.
func (e *Error) Add(err error) {
	if err == nil {
		return
	}
	if multi, ok := err.(*Error); ok && multi.Kind == KindMultipleErrors {
		e.errs = append(e.errs, multi.errs...)
		return
	}
	e.errs = append(e.errs, err)
}

// Errors returns a copy of the collected failures.
func (e *Error) Errors() []error {
	out := make([]error, len(e.errs))
	copy(out, e.errs)
	return out
}

// Len returns the number of collected failures.
func (e *Error) Len() int {
	return len(e.errs)
}

// Err returns the collection as an error, or nil when nothing was collected.
func (e *Error) Err() error {
	if len(e.errs) == 0 {
		return nil
	}
	return e
}

// KindOf returns the kind of err, or an empty Kind when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Flatten returns the individual failures carried by err: the children of a
// collection, or err itself.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok && e.Kind == KindMultipleErrors {
		return e.Errors()
	}
	return []error{err}
}
