package sift

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error is the failure value raised by the selection operations. Type
// discriminates the failure, Message describes the offending condition.
type Error struct {
	Type    ErrorType
	Message string
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "sift - no error message"
}

// Is matches any Error carrying the same Type, so errors.Is(err,
// Error{Type: t}) works alongside IsErrorOfType.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Type == e.Type
}

//go:generate stringer --type=ErrorType --output=errors_string.go
type ErrorType byte

const (
	ErrUnknown ErrorType = iota
	// ErrIndexOutOfRange is raised by ElementAt when the index is negative
	// or not less than the sequence length.
	ErrIndexOutOfRange
	// ErrNoMatch is raised by First, Last, and Single when no element
	// satisfies the predicate.
	ErrNoMatch
	// ErrMultipleMatches is raised by Single when a second satisfying
	// element is found.
	ErrMultipleMatches
)

// IsErrorOfType returns true if err is (or wraps) an Error of the given type.
func IsErrorOfType(err error, t ErrorType) bool {
	var e Error
	return errors.As(err, &e) && e.Type == t
}

func newSimpleError(t ErrorType, msg string) error {
	return Error{Type: t, Message: msg}
}

func newSimpleErrorf(t ErrorType, format string, args ...interface{}) error {
	return Error{Type: t, Message: fmt.Sprintf(format, args...)}
}
