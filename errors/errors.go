// Package errors defines the single structured error type surfaced by every
// component of the importer.
package errors

import (
	"fmt"
)

// Kind classifies why a top-level Import call failed.
type Kind string

const (
	// MalformedImport means an import directive's regex mismatched, its
	// path was missing, or its name list was empty.
	MalformedImport Kind = "MalformedImport"
	// MissingFieldType means a field's named type resolved to neither a
	// built-in nor a definition in schemaMap.
	MissingFieldType Kind = "MissingFieldType"
	// MissingInterface means an object's `implements X` named an
	// unresolved interface.
	MissingInterface Kind = "MissingInterface"
	// MissingUnionMember means a union listed an unresolved member type.
	MissingUnionMember Kind = "MissingUnionMember"
	// MissingDirective means a directive application named an unknown
	// directive.
	MissingDirective Kind = "MissingDirective"
	// SourceReadFailure means a filesystem read failed and could not be
	// recovered via module lookup.
	SourceReadFailure Kind = "SourceReadFailure"
	// AstParseFailure means the underlying SDL parser rejected the input.
	AstParseFailure Kind = "AstParseFailure"
)

// Location mirrors a position in a source document. Zero value means
// "no location known".
type Location struct {
	Source string
	Line   int
	Column int
}

// Error is the one error type every component returns. It is always fatal
// to the enclosing top-level Import call; there is no partial success.
type Error struct {
	Kind     Kind
	Message  string
	Location Location
	cause    error
}

// Errorf builds an *Error of the given kind from a format string.
func Errorf(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Wrap builds an *Error of the given kind, preserving cause for
// errors.Unwrap/errors.Is.
func Wrap(kind Kind, cause error, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...), cause: cause}
}

func (err *Error) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql-import: %s", err.Message)
	if err.Location.Source != "" {
		str += fmt.Sprintf(" (%s:%d:%d)", err.Location.Source, err.Location.Line, err.Location.Column)
	}
	return str
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (err *Error) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.cause
}

var _ error = &Error{}
