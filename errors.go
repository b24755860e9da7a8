package radiotap

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the closed set of failure categories a parse can report. Kind is
// authoritative for callers that need to branch on the failure category;
// any attached context is for humans only.
type Kind int

const (
	// IoError means a read past end-of-buffer occurred during header
	// parsing.
	IoError Kind = iota

	// IncompleteError means a field's computed end exceeds header.length,
	// or a vendor skip overruns the buffer.
	IncompleteError

	// InvalidLength means input.len() < header.length.
	InvalidLength

	// InvalidFormat means a field decoder rejected its bytes (enum out of
	// range, reserved value).
	InvalidFormat

	// UnsupportedVersion means the Radiotap header version is not 0.
	UnsupportedVersion

	// UnsupportedField means a presence bit maps to an unknown field kind
	// in a known namespace, or a rate-table lookup fell outside its
	// defined domain.
	UnsupportedField
)

func (k Kind) String() string {
	switch k {
	case IoError:
		return "IoError"
	case IncompleteError:
		return "IncompleteError"
	case InvalidLength:
		return "InvalidLength"
	case InvalidFormat:
		return "InvalidFormat"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case UnsupportedField:
		return "UnsupportedField"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by every operation in this package. The
// Kind is authoritative; the wrapped cause chain (built with
// github.com/pkg/errors as calls unwind) exists only to help a human locate
// the failure, following the same split original_source made between
// ErrorKind and its failure::Context wrapper.
type Error struct {
	kind  Kind
	cause error
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, cause: errors.New(msg)}
}

func wrapError(kind Kind, err error, msg string) *Error {
	return &Error{kind: kind, cause: errors.Wrap(err, msg)}
}

// Kind returns the authoritative failure category.
func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.cause)
}

// Unwrap allows errors.Is/errors.As (stdlib and pkg/errors) to see through
// to the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// Cause exposes the underlying error for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.cause }

func errIO(context string) *Error {
	return newError(IoError, context)
}

func errIncomplete(context string) *Error {
	return newError(IncompleteError, context)
}

func errInvalidLength(context string) *Error {
	return newError(InvalidLength, context)
}

func errInvalidFormat(context string) *Error {
	return newError(InvalidFormat, context)
}

func errUnsupportedVersion(context string) *Error {
	return newError(UnsupportedVersion, context)
}

func errUnsupportedField(context string) *Error {
	return newError(UnsupportedField, context)
}
