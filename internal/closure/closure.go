// Package closure runs the fixed-point expansion of the seed set over the
// type-reference graph, pulling in every transitively needed definition
// and validating that every referenced name resolves.
package closure

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/graph-gophers/graphql-import/errors"
	"github.com/graph-gophers/graphql-import/internal/definition"
	"github.com/graph-gophers/graphql-import/log"
)

// Close runs the closure engine over seed and returns the
// final, name-deduplicated definition list in discovery order.
func Close(allDefinitions, seed, typeDefinitions []definition.Definition, tracer log.Tracer) ([]definition.Definition, error) {
	if tracer == nil {
		tracer = log.NoopTracer{}
	}

	schemaMap := buildSchemaMap(allDefinitions)

	pool := append([]definition.Definition{}, seed...)
	inPool := map[string]bool{}
	seedByName := map[string]definition.Definition{}
	for _, d := range pool {
		inPool[d.Name()] = true
		seedByName[d.Name()] = d
	}

	pending := append([]definition.Definition{}, typeDefinitions...)
	visited := map[string]bool{}

	e := &engine{schemaMap: schemaMap, allDefinitions: allDefinitions, inPool: inPool, tracer: tracer}

	for i := 0; i < len(pending); i++ {
		d := pending[i]
		if visited[d.Name()] {
			continue
		}
		visited[d.Name()] = true
		// A seeded name is expanded in its seeded form, so root operation
		// fields merged in from other files are closed over as well.
		if s, ok := seedByName[d.Name()]; ok {
			d = s
		}
		tracer.Trace(log.ExpandDefinition, d.Name(), string(d.Kind()))

		extensions, err := e.expand(d)
		if err != nil {
			return nil, err
		}
		// Each extension's inclusion was already decided, and inPool
		// updated, by the engine at resolution time.
		pool = append(pool, extensions...)
		pending = append(pending, extensions...)
	}

	return dedupeFirst(pool), nil
}

// buildSchemaMap is the authoritative name -> definition lookup, built from
// the flattened global pool. Later definitions with equal names overwrite
// earlier ones.
func buildSchemaMap(allDefinitions []definition.Definition) map[string]definition.Definition {
	m := make(map[string]definition.Definition, len(allDefinitions))
	for _, d := range allDefinitions {
		m[d.Name()] = d
	}
	return m
}

type engine struct {
	schemaMap      map[string]definition.Definition
	allDefinitions []definition.Definition
	inPool         map[string]bool
	tracer         log.Tracer
}

// expand computes the extension list for a single popped definition,
// dispatching on its kind.
func (e *engine) expand(d definition.Definition) ([]definition.Definition, error) {
	var extensions []definition.Definition

	if d.Kind() != definition.Directive {
		ext, err := e.expandDirectiveApplications(d)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)
	}

	switch d.Kind() {
	case definition.InputObject:
		ext, err := e.expandFieldTypes(d)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)

	case definition.Interface:
		ext, err := e.expandFieldTypes(d)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)
		extensions = append(extensions, e.implementingObjects(d.Name())...)

	case definition.Union:
		ext, err := e.expandUnionMembers(d)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)

	case definition.Object:
		ext, err := e.expandInterfaces(d)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)

		ext, err = e.expandFieldTypes(d)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)

	case definition.Directive:
		for _, arg := range d.Args() {
			ext, err := e.recurseType(arg.Name, arg.Type)
			if err != nil {
				return nil, err
			}
			extensions = append(extensions, ext...)
		}
	}

	return extensions, nil
}

func (e *engine) expandDirectiveApplications(d definition.Definition) ([]definition.Definition, error) {
	var extensions []definition.Definition
	for _, app := range d.AppliedDirectives() {
		ext, err := e.ensureDirective(app.Name)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)
	}
	for _, f := range d.Fields() {
		for _, app := range f.Directives {
			ext, err := e.ensureDirective(app.Name)
			if err != nil {
				return nil, err
			}
			extensions = append(extensions, ext...)
		}
		for _, arg := range f.Arguments {
			for _, app := range arg.Directives {
				ext, err := e.ensureDirective(app.Name)
				if err != nil {
					return nil, err
				}
				extensions = append(extensions, ext...)
			}
		}
	}
	if d.Type != nil {
		for _, v := range d.Type.EnumValues {
			for _, app := range v.Directives {
				ext, err := e.ensureDirective(app.Name)
				if err != nil {
					return nil, err
				}
				extensions = append(extensions, ext...)
			}
		}
	}
	return extensions, nil
}

func (e *engine) ensureDirective(name string) ([]definition.Definition, error) {
	if definition.BuiltinDirectives[name] || e.inPool[name] {
		return nil, nil
	}
	dd, ok := e.schemaMap[name]
	if !ok || dd.Kind() != definition.Directive {
		return nil, errors.Errorf(errors.MissingDirective, "Directive %s: Couldn't find type %s in any of the schemas.", name, name)
	}

	e.inPool[name] = true
	extensions := []definition.Definition{dd}
	for _, arg := range dd.Args() {
		ext, err := e.recurseType(arg.Name, arg.Type)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)
	}
	return extensions, nil
}

func (e *engine) expandFieldTypes(d definition.Definition) ([]definition.Definition, error) {
	var extensions []definition.Definition
	for _, f := range d.Fields() {
		ext, err := e.recurseType(f.Name, f.Type)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, ext...)

		for _, arg := range f.Arguments {
			ext, err := e.recurseType(arg.Name, arg.Type)
			if err != nil {
				return nil, err
			}
			extensions = append(extensions, ext...)
		}
	}
	return extensions, nil
}

func (e *engine) expandInterfaces(d definition.Definition) ([]definition.Definition, error) {
	var extensions []definition.Definition
	for _, name := range d.Interfaces() {
		if e.inPool[name] {
			continue
		}
		iface, ok := e.schemaMap[name]
		if !ok {
			return nil, errors.Errorf(errors.MissingInterface, "Couldn't find interface %s in any of the schemas.", name)
		}
		e.inPool[name] = true
		extensions = append(extensions, iface)
	}
	return extensions, nil
}

func (e *engine) expandUnionMembers(d definition.Definition) ([]definition.Definition, error) {
	var extensions []definition.Definition
	for _, name := range d.Types() {
		if e.inPool[name] {
			continue
		}
		member, ok := e.schemaMap[name]
		if !ok {
			return nil, errors.Errorf(errors.MissingUnionMember, "Couldn't find type %s in any of the schemas.", name)
		}
		e.inPool[name] = true
		extensions = append(extensions, member)
	}
	return extensions, nil
}

// implementingObjects returns every not-yet-pooled Object in the global
// pool that lists interfaceName among its implemented interfaces, per
// the interface-completeness rule.
func (e *engine) implementingObjects(interfaceName string) []definition.Definition {
	var out []definition.Definition
	for _, d := range e.allDefinitions {
		if d.Kind() != definition.Object || e.inPool[d.Name()] {
			continue
		}
		for _, name := range d.Interfaces() {
			if name == interfaceName {
				e.inPool[d.Name()] = true
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// recurseType descends through list-of and non-null-of wrappers to the
// named leaf type and ensures it is resolvable.
func (e *engine) recurseType(ownerName string, t *ast.Type) ([]definition.Definition, error) {
	if t == nil {
		return nil, nil
	}
	leaf := namedLeaf(t)
	if definition.BuiltinTypes[leaf] || e.inPool[leaf] {
		return nil, nil
	}
	resolved, ok := e.schemaMap[leaf]
	if !ok {
		return nil, errors.Errorf(errors.MissingFieldType, "Field %s: Couldn't find type %s in any of the schemas.", ownerName, leaf)
	}
	e.inPool[leaf] = true
	return []definition.Definition{resolved}, nil
}

func namedLeaf(t *ast.Type) string {
	for t.NamedType == "" && t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}

// dedupeFirst removes later duplicates by name, keeping each name's first
// occurrence and its position.
func dedupeFirst(pool []definition.Definition) []definition.Definition {
	seen := map[string]bool{}
	var out []definition.Definition
	for _, d := range pool {
		if seen[d.Name()] {
			continue
		}
		seen[d.Name()] = true
		out = append(out, d)
	}
	return out
}
