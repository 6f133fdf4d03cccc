package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds raised by the analysis pipeline.
var (
	// ErrValidation indicates malformed or physically inconsistent input. It is
	// raised while inputs are resolved, before any derived quantity is computed.
	ErrValidation = NewKind("VALIDATION")
	// ErrComputation indicates that inputs passed validation but produced a
	// physically impossible intermediate result (e.g. non-positive stiffness).
	ErrComputation = NewKind("COMPUTATION")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error, an optional offending field and an arbitrary message. It fully
// supports errors.Is/errors.As and unwrapping.
//
// Error string formatting:
//   - field, msg and err set: "<field>: <msg>: <err>"
//   - field and msg set: "<field>: <msg>"
//   - only msg and/or err: as above without the field prefix
//   - nothing set: the kind's Error() string.
type Error struct {
	kind  Kind
	err   error
	field string
	msg   string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Field constructs a semantic error about a single input field. The message
// should name the violated constraint, e.g. "must be positive".
func Field(k Kind, field string, constraintFmt string, args ...any) *Error {
	return &Error{kind: k, field: field, msg: fmt.Sprintf(constraintFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var s string
	switch {
	case e.msg != "" && e.err != nil:
		s = e.msg + ": " + e.err.Error()
	case e.msg != "":
		s = e.msg
	case e.err != nil:
		s = e.err.Error()
	case e.kind != nil:
		s = e.kind.Error()
	default:
		s = "unknown error"
	}

	if e.field != "" {
		return e.field + ": " + s
	}

	return s
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped
// error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// FieldName returns the offending input field, if any.
func (e *Error) FieldName() string { return e.field }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// FieldOf extracts the offending field name from anywhere in err's chain.
func FieldOf(err error) string {
	var se *Error
	for err != nil {
		if !errors.As(err, &se) {
			return ""
		}
		if se.field != "" {
			return se.field
		}
		err = se.err
	}

	return ""
}
