// Package collector performs the depth-first traversal of the file graph
// that, for every visited source, records both the full definition set it
// declares and the subset it contributes through the import edge that
// reached it.
package collector

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/graph-gophers/graphql-import/errors"
	"github.com/graph-gophers/graphql-import/internal/definition"
	"github.com/graph-gophers/graphql-import/internal/directive"
	"github.com/graph-gophers/graphql-import/internal/source"
	"github.com/graph-gophers/graphql-import/log"
)

// Accumulator owns every per-traversal list built by a single Collect
// call. Its lifetime is bounded by that call; nothing here is shared
// across concurrent invocations.
type Accumulator struct {
	// AllDefinitions holds, per visited source in visit order, every
	// filter-admissible definition that source declares.
	AllDefinitions [][]definition.Definition
	// TypeDefinitions holds, per visited source in visit order, only the
	// definitions admitted by that source's incoming import set.
	TypeDefinitions [][]definition.Definition

	processedEdges map[string]map[string]bool
}

func newAccumulator() *Accumulator {
	return &Accumulator{processedEdges: map[string]map[string]bool{}}
}

func (a *Accumulator) seen(sourceKey string, d directive.Directive) bool {
	return a.processedEdges[sourceKey][d.Key()]
}

func (a *Accumulator) markSeen(sourceKey string, d directive.Directive) {
	edges, ok := a.processedEdges[sourceKey]
	if !ok {
		edges = map[string]bool{}
		a.processedEdges[sourceKey] = edges
	}
	edges[d.Key()] = true
}

// knownNonRootNames is the set of non-root-operation-type names admitted by
// any source visited so far, used by the non-root wildcard import rule.
func (a *Accumulator) knownNonRootNames() map[string]bool {
	known := map[string]bool{}
	for _, defs := range a.TypeDefinitions {
		for _, d := range defs {
			if definition.IsRootOperationType(d.Name()) {
				continue
			}
			known[d.Name()] = true
		}
	}
	return known
}

// Options configures a Collect call.
type Options struct {
	Resolver *source.Resolver
	Tracer   log.Tracer
}

// Collect walks the file graph starting at rootKey/rootSDL, seeded with
// imports = ["*"] for the root source, and returns the accumulated
// per-file definition lists.
func Collect(rootKey, rootSDL string, opts Options) (*Accumulator, error) {
	if opts.Tracer == nil {
		opts.Tracer = log.NoopTracer{}
	}
	c := &collector{acc: newAccumulator(), resolver: opts.Resolver, tracer: opts.Tracer}
	if err := c.visit(rootKey, rootSDL, []string{directive.Wildcard}, true); err != nil {
		return nil, err
	}
	return c.acc, nil
}

type collector struct {
	acc      *Accumulator
	resolver *source.Resolver
	tracer   log.Tracer
}

func (c *collector) visit(sourceKey, sdl string, imports []string, isRoot bool) error {
	admissible, err := parseAdmissible(sourceKey, sdl)
	if err != nil {
		return err
	}
	c.acc.AllDefinitions = append(c.acc.AllDefinitions, admissible)

	known := c.acc.knownNonRootNames()
	current := filterByImports(admissible, imports, isRoot, known)
	c.acc.TypeDefinitions = append(c.acc.TypeDefinitions, current)

	c.tracer.Trace(log.VisitSource, sourceKey, strings.Join(imports, ","))

	directives, err := directive.Scan(sdl)
	if err != nil {
		return err
	}

	for _, m := range directives {
		if c.acc.seen(sourceKey, m) {
			c.tracer.Trace(log.SkipReentry, sourceKey, m.From)
			continue
		}
		c.acc.markSeen(sourceKey, m)

		key, text, err := c.resolver.Resolve(sourceKey, m.From)
		if err != nil {
			return err
		}
		if err := c.visit(key, text, m.Imports, false); err != nil {
			return err
		}
	}
	return nil
}

// parseAdmissible parses sdl into its admissible (Scalar, Object, Interface,
// Enum, Union, InputObject, Directive) definitions, discarding every other
// AST definition kind.
func parseAdmissible(sourceKey, sdl string) ([]definition.Definition, error) {
	if source.IsEffectivelyEmpty(sdl) {
		return nil, nil
	}

	doc, err := parser.ParseSchema(&ast.Source{Name: sourceKey, Input: sdl})
	if err != nil {
		return nil, errors.Wrap(errors.AstParseFailure, err, "parsing %q", sourceKey)
	}

	var admissible []definition.Definition
	for _, t := range doc.Definitions {
		if d, ok := definition.FromAdmissibleKind(t); ok {
			admissible = append(admissible, d)
		}
	}
	for _, dd := range doc.Directives {
		admissible = append(admissible, definition.FromDirective(dd))
	}
	return admissible, nil
}

// filterByImports keeps only the definitions a source's incoming import
// list actually admits.
func filterByImports(admissible []definition.Definition, imports []string, isRoot bool, knownNonRoot map[string]bool) []definition.Definition {
	if len(imports) == 1 && imports[0] == directive.Wildcard {
		if isRoot {
			return admissible
		}
		return filterWildcardNonRoot(admissible, knownNonRoot)
	}
	return filterByNames(admissible, groupByHead(imports))
}

// filterWildcardNonRoot implements the "re-export only already-needed
// types" rule: a non-root `import * from "x"` keeps only the Object
// definitions from x whose names some earlier source has already admitted,
// excluding root operation types.
func filterWildcardNonRoot(admissible []definition.Definition, knownNonRoot map[string]bool) []definition.Definition {
	var out []definition.Definition
	for _, d := range admissible {
		if d.Kind() != definition.Object {
			continue
		}
		if definition.IsRootOperationType(d.Name()) {
			continue
		}
		if knownNonRoot[d.Name()] {
			out = append(out, d)
		}
	}
	return out
}

// headGroup collects the restrictions requested for a single head name
// across an import list, e.g. "Query.posts, Query.hello" both share head
// "Query".
type headGroup struct {
	bare          bool // a bare "Head" import was present: keep every field
	wildcardField bool // a "Head.*" import was present: keep every field
	fieldNames    map[string]bool
}

func groupByHead(imports []string) map[string]*headGroup {
	groups := map[string]*headGroup{}
	for _, name := range imports {
		head, field, dotted := splitDotted(name)
		g := groups[head]
		if g == nil {
			g = &headGroup{fieldNames: map[string]bool{}}
			groups[head] = g
		}
		switch {
		case !dotted:
			g.bare = true
		case field == directive.Wildcard:
			g.wildcardField = true
		default:
			g.fieldNames[field] = true
		}
	}
	return groups
}

func splitDotted(name string) (head, field string, dotted bool) {
	idx := strings.IndexByte(name, '.')
	if idx < 0 {
		return name, "", false
	}
	return name[:idx], name[idx+1:], true
}

// filterByNames keeps every admissible definition whose name matches a
// requested head, restricting Object/Interface field lists to the
// requested fields when the import was dotted and not wildcarded.
func filterByNames(admissible []definition.Definition, groups map[string]*headGroup) []definition.Definition {
	var out []definition.Definition
	for _, d := range admissible {
		g, ok := groups[d.Name()]
		if !ok {
			continue
		}
		if g.bare || g.wildcardField || len(d.Fields()) == 0 {
			out = append(out, d)
			continue
		}

		restricted := d.Clone()
		var kept ast.FieldList
		for _, f := range restricted.Fields() {
			if g.fieldNames[f.Name] {
				kept = append(kept, f)
			}
		}
		restricted.SetFields(kept)
		out = append(out, restricted)
	}
	return out
}
