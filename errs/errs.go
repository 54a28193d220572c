// Package errs defines the structural error taxonomy shared by every layer
// of the parser, from the byte-level reader up through the OneNote
// interpreters. There is no local recovery anywhere in this module: the
// first structural error aborts the whole parse and is handed back to the
// caller enriched with the context named below.
package errs

import "fmt"

// Kind discriminates which layer of the parser detected the failure.
type Kind int

const (
	// UnexpectedEOF means the Reader ran past the end of its buffer.
	UnexpectedEOF Kind = iota

	// MalformedFssHttpB means a violation of the packaging / data-element
	// layer: bad padding, wrong stream-object type, mismatched end
	// marker, or an unknown element type encountered in strict mode.
	MalformedFssHttpB

	// MalformedOneStore means a violation of the OneStore object/property
	// layer: bad property shape, property-set length mismatch, or a JcId
	// mismatch.
	MalformedOneStore

	// MalformedOneNoteFile means a violation at the interpreter layer:
	// a required property is missing, an enum value is out of range, or a
	// reference array has the wrong shape.
	MalformedOneNoteFile

	// MalformedOneNote means a resolved reference's target is missing
	// from its ObjectSpace.
	MalformedOneNote
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case MalformedFssHttpB:
		return "MalformedFssHttpBData"
	case MalformedOneStore:
		return "MalformedOneStoreData"
	case MalformedOneNoteFile:
		return "MalformedOneNoteFileData"
	case MalformedOneNote:
		return "MalformedOneNoteData"
	default:
		return "UnknownError"
	}
}

// Error is the single error type returned across the module's public
// boundary. Context fields are populated on a best-effort basis by the
// layer that detects the failure.
type Error struct {
	Kind Kind
	Msg  string

	// Context, filled in where available.
	PropertyID uint32
	ObjectType uint32
	Offset     int64

	cause error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	if e.PropertyID != 0 {
		s += fmt.Sprintf(" (property 0x%08X)", e.PropertyID)
	}
	if e.ObjectType != 0 {
		s += fmt.Sprintf(" (stream-object type 0x%X)", e.ObjectType)
	}
	if e.Offset != 0 {
		s += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error of the given kind with a plain message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around a lower-level cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, cause: cause}
}

// WithProperty returns a copy of e annotated with the property-ID that was
// being decoded when the failure occurred.
func (e *Error) WithProperty(id uint32) *Error {
	c := *e
	c.PropertyID = id
	return &c
}

// WithObjectType returns a copy of e annotated with the stream-object type
// code that was being parsed when the failure occurred.
func (e *Error) WithObjectType(t uint32) *Error {
	c := *e
	c.ObjectType = t
	return &c
}

// WithOffset returns a copy of e annotated with the byte offset at which
// the failure occurred.
func (e *Error) WithOffset(off int64) *Error {
	c := *e
	c.Offset = off
	return &c
}
