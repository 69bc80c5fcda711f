package graphqlimport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/graph-gophers/graphql-import/errors"
	"github.com/graph-gophers/graphql-import/internal/closure"
	"github.com/graph-gophers/graphql-import/internal/collector"
	"github.com/graph-gophers/graphql-import/internal/definition"
	"github.com/graph-gophers/graphql-import/internal/rootmerge"
	"github.com/graph-gophers/graphql-import/internal/source"
)

// inlineRootKey is the canonical key used when Import is given literal SDL
// text rather than a filesystem path. It deliberately does not end in
// ".graphql" so that nested relative-path resolution never
// kicks in for imports written from an inline root.
const inlineRootKey = "<root>"

// Import bundles the SDL corpus rooted at input into one printed, closed
// schema document. input is either a filesystem path ending in
// ".graphql" or a literal SDL string.
func Import(input string, opts ...Option) (string, error) {
	cfg := newConfig(opts)

	rootKey, rootSDL, err := resolveRootInput(input)
	if err != nil {
		return "", err
	}

	resolver := source.New(cfg.sources, cfg.moduleResolver)
	acc, err := collector.Collect(rootKey, rootSDL, collector.Options{Resolver: resolver, Tracer: cfg.tracer})
	if err != nil {
		return "", err
	}

	seed := rootmerge.Seed(acc.TypeDefinitions)
	pool, err := closure.Close(flatten(acc.AllDefinitions), seed, flatten(acc.TypeDefinitions), cfg.tracer)
	if err != nil {
		return "", err
	}

	return assemble(pool)
}

func resolveRootInput(input string) (key, sdl string, err error) {
	if !strings.HasSuffix(input, ".graphql") {
		return inlineRootKey, input, nil
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", "", errors.Wrap(errors.SourceReadFailure, err, "resolving root path %q", input)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", "", errors.Wrap(errors.SourceReadFailure, err, "resolving root path %q", input)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", "", errors.Wrap(errors.SourceReadFailure, err, "reading root schema %q", input)
	}
	return resolved, string(data), nil
}

func flatten(perFile [][]definition.Definition) []definition.Definition {
	var out []definition.Definition
	for _, defs := range perFile {
		out = append(out, defs...)
	}
	return out
}

// assemble builds a schema document from the closed pool and hands it to
// the external printer.
func assemble(pool []definition.Definition) (string, error) {
	doc := &ast.SchemaDocument{}
	for _, d := range pool {
		switch {
		case d.Directive != nil:
			doc.Directives = append(doc.Directives, d.Directive)
		case d.Type != nil:
			doc.Definitions = append(doc.Definitions, d.Type)
		}
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.String(), nil
}
