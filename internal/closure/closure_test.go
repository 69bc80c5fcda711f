package closure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/graphql-import/internal/closure"
	"github.com/graph-gophers/graphql-import/internal/collector"
	"github.com/graph-gophers/graphql-import/internal/definition"
	"github.com/graph-gophers/graphql-import/internal/rootmerge"
	"github.com/graph-gophers/graphql-import/internal/source"
)

func close(t *testing.T, root string, sources map[string]string) []definition.Definition {
	t.Helper()
	resolver := source.New(sources, nil)
	acc, err := collector.Collect(root, sources[root], collector.Options{Resolver: resolver})
	require.NoError(t, err)

	seed := rootmerge.Seed(acc.TypeDefinitions)
	pool, err := closure.Close(flatten(acc.AllDefinitions), seed, flatten(acc.TypeDefinitions), nil)
	require.NoError(t, err)
	return pool
}

func flatten(perFile [][]definition.Definition) []definition.Definition {
	var out []definition.Definition
	for _, defs := range perFile {
		out = append(out, defs...)
	}
	return out
}

func namesOf(defs []definition.Definition) []string {
	var out []string
	for _, d := range defs {
		out = append(out, d.Name())
	}
	return out
}

func TestClose_TransitiveFieldTypes(t *testing.T) {
	pool := close(t, "a", map[string]string{
		"a": `# import B from "b"
type A { first: String second: Float b: B }`,
		"b": `# import C from "c"
type B { c: C hello: String! }`,
		"c": `type C { id: ID! }`,
	})
	assert.Equal(t, []string{"A", "B", "C"}, namesOf(pool))
}

func TestClose_UnusedLeafPruned(t *testing.T) {
	pool := close(t, "a", map[string]string{
		"a": `# import B from "b"
type A { b: B }`,
		"b": `type B { x: String }
type Unrelated { y: Int }`,
	})
	assert.Equal(t, []string{"A", "B"}, namesOf(pool))
}

func TestClose_UnionClosure(t *testing.T) {
	pool := close(t, "a", map[string]string{
		"a": `# import B from "b"
type A { b: B }`,
		"b": `# import C1,C2 from "c"
union B = C1 | C2`,
		"c": `type C1 { c1: ID }
type C2 { c2: ID }`,
	})
	assert.Equal(t, []string{"A", "B", "C1", "C2"}, namesOf(pool))
}

func TestClose_InterfaceBackfill(t *testing.T) {
	pool := close(t, "a", map[string]string{
		"a": `# import B from "b"
type A implements B { id: ID! }`,
		"b": `interface B { id: ID! }
type B1 implements B { id: ID! }`,
	})
	assert.ElementsMatch(t, []string{"A", "B", "B1"}, namesOf(pool))
}

func TestClose_MissingFieldType(t *testing.T) {
	resolver := source.New(map[string]string{"a": `type A { post: Post }`}, nil)
	acc, err := collector.Collect("a", "type A { post: Post }", collector.Options{Resolver: resolver})
	require.NoError(t, err)

	seed := rootmerge.Seed(acc.TypeDefinitions)
	_, err = closure.Close(flatten(acc.AllDefinitions), seed, flatten(acc.TypeDefinitions), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field post: Couldn't find type Post in any of the schemas.")
}

func TestClose_CycleTerminates(t *testing.T) {
	pool := close(t, "a", map[string]string{
		"a": `# import B from "b"
type A { first: String b: B }`,
		"b": `# import A from "a"
type B { hello: String! a: A }`,
	})
	assert.ElementsMatch(t, []string{"A", "B"}, namesOf(pool))
}
