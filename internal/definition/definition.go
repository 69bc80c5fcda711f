// Package definition models a valid schema definition as a tagged variant
// over the AST node kinds the importer recognizes: Scalar, Object,
// Interface, Enum, Union, InputObject, Directive. Everything downstream
// (the collector, the root-type merger, the closure engine) works against
// this one type rather than against gqlparser's two separate AST shapes
// (*ast.Definition for types, *ast.DirectiveDefinition for directives), so
// dispatch stays a single switch instead of an inheritance hierarchy.
package definition

import "github.com/vektah/gqlparser/v2/ast"

// Kind is one of the seven admissible kinds. Every other AST definition
// kind (schema definition, operation, fragment, extension) is discarded
// at filter time and never becomes a Definition.
type Kind string

const (
	Scalar      Kind = "SCALAR"
	Object      Kind = "OBJECT"
	Interface   Kind = "INTERFACE"
	Enum        Kind = "ENUM"
	Union       Kind = "UNION"
	InputObject Kind = "INPUT_OBJECT"
	Directive   Kind = "DIRECTIVE"
)

// BuiltinTypes are never resolved as imports.
var BuiltinTypes = map[string]bool{
	"String":  true,
	"Float":   true,
	"Int":     true,
	"Boolean": true,
	"ID":      true,
}

// BuiltinDirectives are never resolved as imports.
var BuiltinDirectives = map[string]bool{
	"deprecated": true,
	"skip":       true,
	"include":    true,
}

// Definition wraps exactly one of a gqlparser type definition or directive
// definition. The zero value represents "no definition" and both fields
// are nil.
type Definition struct {
	Type      *ast.Definition
	Directive *ast.DirectiveDefinition
}

// FromType wraps a Scalar/Object/Interface/Enum/Union/InputObject AST node.
func FromType(t *ast.Definition) Definition { return Definition{Type: t} }

// FromDirective wraps a directive declaration AST node.
func FromDirective(d *ast.DirectiveDefinition) Definition { return Definition{Directive: d} }

// IsZero reports whether this holds neither a type nor a directive.
func (d Definition) IsZero() bool { return d.Type == nil && d.Directive == nil }

// Name is the definition's name, unique within a pool after merging.
func (d Definition) Name() string {
	switch {
	case d.Directive != nil:
		return d.Directive.Name
	case d.Type != nil:
		return d.Type.Name
	default:
		return ""
	}
}

// Kind reports which of the seven admissible kinds this definition is.
func (d Definition) Kind() Kind {
	if d.Directive != nil {
		return Directive
	}
	if d.Type == nil {
		return ""
	}
	switch d.Type.Kind {
	case ast.Scalar:
		return Scalar
	case ast.Object:
		return Object
	case ast.Interface:
		return Interface
	case ast.Enum:
		return Enum
	case ast.Union:
		return Union
	case ast.InputObject:
		return InputObject
	default:
		return ""
	}
}

// FromAdmissibleKind filters a raw gqlparser *ast.Definition to the six
// admissible type kinds; ok is false for every other AST definition kind
// (schema definition, extension, and any executable-document kind a
// SchemaDocument cannot even contain).
func FromAdmissibleKind(t *ast.Definition) (Definition, bool) {
	switch t.Kind {
	case ast.Scalar, ast.Object, ast.Interface, ast.Enum, ast.Union, ast.InputObject:
		return FromType(t), true
	default:
		return Definition{}, false
	}
}

// IsRootOperationType reports whether name is Query, Mutation, or
// Subscription.
func IsRootOperationType(name string) bool {
	switch name {
	case "Query", "Mutation", "Subscription":
		return true
	default:
		return false
	}
}

// Fields returns the field list of an Object, Interface or InputObject (the
// input fields); nil for directive declarations and for kinds without fields.
func (d Definition) Fields() ast.FieldList {
	if d.Type == nil {
		return nil
	}
	return d.Type.Fields
}

// SetFields replaces the field list of an Object or Interface in place.
func (d Definition) SetFields(fields ast.FieldList) {
	if d.Type != nil {
		d.Type.Fields = fields
	}
}

// Clone returns a shallow copy of the wrapped AST node so that the
// root-type merger can append fields to a pooled copy without mutating the
// definition still referenced from a per-file accumulator.
func (d Definition) Clone() Definition {
	switch {
	case d.Type != nil:
		clone := *d.Type
		clone.Fields = append(ast.FieldList{}, d.Type.Fields...)
		return Definition{Type: &clone}
	case d.Directive != nil:
		clone := *d.Directive
		return Definition{Directive: &clone}
	default:
		return Definition{}
	}
}

// Args returns a directive declaration's argument list; nil for every other
// kind.
func (d Definition) Args() ast.ArgumentDefinitionList {
	if d.Directive == nil {
		return nil
	}
	return d.Directive.Arguments
}

// AppliedDirectives returns the directives applied to this definition itself
// (as opposed to directives declared by it). Empty for directive
// declarations, which cannot themselves carry directive applications.
func (d Definition) AppliedDirectives() ast.DirectiveList {
	if d.Type == nil {
		return nil
	}
	return d.Type.Directives
}

// Interfaces returns the names an Object declares with `implements`; nil
// otherwise.
func (d Definition) Interfaces() []string {
	if d.Type == nil {
		return nil
	}
	return d.Type.Interfaces
}

// Types returns a Union's member type names; nil otherwise.
func (d Definition) Types() []string {
	if d.Type == nil {
		return nil
	}
	return d.Type.Types
}

// AppendFields merges another definition's fields into this one in place.
// Used by the root-type merger when the same root operation type is
// re-declared across files.
func (d Definition) AppendFields(other Definition) {
	if d.Type == nil || other.Type == nil {
		return
	}
	d.Type.Fields = append(d.Type.Fields, other.Type.Fields...)
}
