package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates which cursor produced the error
type Phase string

const (
	PhaseDecode Phase = "decode" // bytes to values
	PhaseEncode Phase = "encode" // values to bytes
)

// Kind categorizes the error
type Kind string

const (
	KindIO              Kind = "io"
	KindNotEnoughBytes  Kind = "not_enough_bytes"
	KindInvalidData     Kind = "invalid_data"
	KindInvalidArgument Kind = "invalid_argument"
)

// Error is the structured error type returned by every cursor operation.
//
// Position is the cursor position at the moment the error was raised.
// Expected and Remaining are only meaningful for KindNotEnoughBytes.
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Detail    string
	Path      []string
	Position  int
	Expected  int
	Remaining int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" in ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	b.WriteString(" at ")
	b.WriteString(strconv.Itoa(e.Position))

	if e.Kind == KindNotEnoughBytes {
		b.WriteString(": expected ")
		b.WriteString(strconv.Itoa(e.Expected))
		b.WriteString(" bytes, ")
		b.WriteString(strconv.Itoa(e.Remaining))
		b.WriteString(" remaining")
	}

	if e.Detail != "" {
		if e.Kind == KindNotEnoughBytes {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err, or any error it wraps, is an *Error of the given kind
// regardless of phase.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Position sets the cursor position
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotEnoughBytes creates a budget error. It is raised before any byte is transferred.
func NotEnoughBytes(phase Phase, pos, expected, remaining int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindNotEnoughBytes,
		Position:  pos,
		Expected:  expected,
		Remaining: remaining,
	}
}

// IO wraps a transport failure of the underlying source or sink
func IO(phase Phase, pos int, cause error) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindIO,
		Position: pos,
		Cause:    cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, pos int, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidData,
		Position: pos,
		Detail:   detail,
	}
}

// UnexpectedValue creates an invalid data error for a decoded value that does not
// match the caller's expectation
func UnexpectedValue(pos int, want, got any) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindInvalidData,
		Position: pos,
		Detail:   fmt.Sprintf("expected value %v, got %v", want, got),
		Value:    got,
	}
}

// ReservedByte creates an invalid data error for a reserved region holding a foreign byte
func ReservedByte(pos int, want, got byte) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindInvalidData,
		Position: pos,
		Detail:   fmt.Sprintf("expected reserved byte 0x%02X, got 0x%02X", want, got),
		Value:    got,
	}
}

// InvalidArgument creates an error for a caller contract violation
func InvalidArgument(phase Phase, pos int, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidArgument,
		Position: pos,
		Detail:   detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// WithPath returns err with the field path prefixed by name when err is an *Error.
// Other errors are returned unchanged.
func WithPath(err error, name string) error {
	var e *Error
	if !stderrors.As(err, &e) {
		return err
	}
	e.Path = append([]string{name}, e.Path...)
	return err
}
