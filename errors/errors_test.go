package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	err := Errorf(MalformedImport, "boom: %d", 42)
	assert.Equal(t, MalformedImport, err.Kind)
	assert.Equal(t, "graphql-import: boom: 42", err.Error())
}

func TestWrapUnwrap(t *testing.T) {
	cause := io.EOF
	err := Wrap(SourceReadFailure, cause, "reading %q", "a.graphql")
	assert.True(t, errors.Is(err, cause))
}

func TestErrorLocation(t *testing.T) {
	err := Errorf(MissingFieldType, "Field post: Couldn't find type Post in any of the schemas.")
	err.Location = Location{Source: "a.graphql", Line: 3, Column: 5}
	assert.Equal(t, `graphql-import: Field post: Couldn't find type Post in any of the schemas. (a.graphql:3:5)`, err.Error())
}

func TestNilError(t *testing.T) {
	var err *Error
	assert.Equal(t, "<nil>", err.Error())
}
