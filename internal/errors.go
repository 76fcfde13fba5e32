package internal

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an Efecta error. An ErrorKind is itself an error, so
// errors.Is(err, NotFoundError) reports whether err has that kind.
type ErrorKind int

// Error kinds.
const (
	// StructureError is a malformed directive, nesting, or marker.
	StructureError ErrorKind = iota
	// NotFoundError is a failed lookup: procedure, variable, method, queue
	// element, map key, or list index.
	NotFoundError
	// TypeError is a capability mismatch or a failed literal parse.
	TypeError
	// ArityError is a wrong argument count.
	ArityError
	// LimitError indicates that the invocation depth limit was exceeded.
	LimitError
	// ConfigError is an invalid configuration value.
	ConfigError
)

var kindNames = [...]string{"structure", "not found", "type", "arity", "limit", "config"}

// String returns a string representation of the ErrorKind.
func (k ErrorKind) String() string {
	if k < StructureError || k > ConfigError {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Error returns the kind's name so that kinds can be used as targets for
// errors.Is.
func (k ErrorKind) Error() string {
	return k.String() + " error"
}

// Error is an error raised while assembling or running an Efecta program.
type Error struct {
	// Kind is the category of the error.
	Kind ErrorKind
	// Msg is the error message.
	Msg string
	// Trace lists the user procedures the error propagated through,
	// innermost first.
	Trace []string
}

// Error returns the error message prefixed by its kind.
func (e *Error) Error() string {
	return e.Kind.String() + " error: " + e.Msg
}

// Is reports whether target is e's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// TraceString formats the error's trace with one frame per line, each
// prefixed by a tab.
func (e *Error) TraceString() string {
	var b strings.Builder
	for _, frame := range e.Trace {
		b.WriteString("\t")
		b.WriteString(frame)
		b.WriteString("\n")
	}
	return b.String()
}

// NewError creates an error of the given kind.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// NewErrorf creates an error of the given kind with a formatted message.
func NewErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// withFrame appends a trace frame to err if it is an *Error. Other errors are
// returned unchanged.
func withFrame(err error, frame string) error {
	if e, ok := err.(*Error); ok {
		e.Trace = append(e.Trace, frame)
	}
	return err
}

// AssertArgCount returns an arity error if args does not have exactly n
// elements. name is the procedure name used in the message.
func AssertArgCount(name string, args []Value, n int) error {
	if len(args) != n {
		return NewErrorf(ArityError, "%s expects %d arguments, got %d", name, n, len(args))
	}
	return nil
}

// AssertArgRange returns an arity error if args has fewer than min or more
// than max elements. A negative max means no upper bound.
func AssertArgRange(name string, args []Value, min, max int) error {
	switch {
	case len(args) < min:
		return NewErrorf(ArityError, "%s expects at least %d arguments, got %d", name, min, len(args))
	case max >= 0 && len(args) > max:
		return NewErrorf(ArityError, "%s expects at most %d arguments, got %d", name, max, len(args))
	}
	return nil
}
