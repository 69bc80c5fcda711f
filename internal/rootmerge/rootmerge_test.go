package rootmerge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/graphql-import/internal/collector"
	"github.com/graph-gophers/graphql-import/internal/rootmerge"
	"github.com/graph-gophers/graphql-import/internal/source"
)

func TestSeed_RootFieldMerge(t *testing.T) {
	sources := map[string]string{
		"a": `# import Query.posts from "b"
# import Query.hello from "c"
type Query { helloA: String }`,
		"b": `type Query { posts: [Post] hello: String }
type Post { field1: String }`,
		"c": `type Query { posts: [Post] hello: String }`,
	}
	resolver := source.New(sources, nil)
	acc, err := collector.Collect("a", sources["a"], collector.Options{Resolver: resolver})
	require.NoError(t, err)

	seed := rootmerge.Seed(acc.TypeDefinitions)
	require.Len(t, seed, 1)
	require.Equal(t, "Query", seed[0].Name())

	var fieldNames []string
	for _, f := range seed[0].Fields() {
		fieldNames = append(fieldNames, f.Name)
	}
	assert.Equal(t, []string{"helloA", "posts", "hello"}, fieldNames)
}

func TestSeed_NoRootTypes(t *testing.T) {
	sources := map[string]string{
		"a": `# import B from "b"
type A { b: B }`,
		"b": `type B { x: String }`,
	}
	resolver := source.New(sources, nil)
	acc, err := collector.Collect("a", sources["a"], collector.Options{Resolver: resolver})
	require.NoError(t, err)

	seed := rootmerge.Seed(acc.TypeDefinitions)
	require.Len(t, seed, 1)
	assert.Equal(t, "A", seed[0].Name())
}
