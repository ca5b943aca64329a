// Package errs holds the error kinds the business layer reports to the web boundary.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an Error for the web boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Error is a failure the client caused and can read about.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Validation reports malformed input.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) error {
	return Validation(fmt.Sprintf(format, args...))
}

// NotFound reports a well-formed reference to a missing record.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
