package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/graphql-import/internal/source"
)

func TestResolveLogical(t *testing.T) {
	r := source.New(map[string]string{"b": "type B { x: String }"}, nil)
	key, text, err := r.Resolve("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "b", key)
	assert.Equal(t, "type B { x: String }", text)
}

func TestResolveLogicalMissing(t *testing.T) {
	r := source.New(map[string]string{}, nil)
	_, _, err := r.Resolve("a", "b")
	require.Error(t, err)
}

func TestResolvePathRelative(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "a.graphql")
	sibling := filepath.Join(dir, "b.graphql")
	require.NoError(t, os.WriteFile(sibling, []byte("type B { x: String }"), 0o644))

	r := source.New(nil, nil)
	key, text, err := r.Resolve(root, "b.graphql")
	require.NoError(t, err)
	assert.Equal(t, "type B { x: String }", text)

	resolved, err := filepath.EvalSymlinks(sibling)
	require.NoError(t, err)
	assert.Equal(t, resolved, key)
}

func TestResolvePathFallsBackToModuleResolver(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "a.graphql")

	called := false
	resolver := &stubModuleResolver{
		resolve: func(fromDir, target string) (string, string, error) {
			called = true
			return "module:" + target, "type X { y: Int }", nil
		},
	}
	r := source.New(nil, resolver)
	key, text, err := r.Resolve(root, "missing.graphql")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "module:missing.graphql", key)
	assert.Equal(t, "type X { y: Int }", text)
}

func TestResolveNoModuleResolverFails(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "a.graphql")
	r := source.New(nil, nil)
	_, _, err := r.Resolve(root, "missing.graphql")
	require.Error(t, err)
}

func TestIsEffectivelyEmpty(t *testing.T) {
	assert.True(t, source.IsEffectivelyEmpty("\n  \n# a comment\n"))
	assert.False(t, source.IsEffectivelyEmpty("type A { x: String }"))
}

type stubModuleResolver struct {
	resolve func(fromDir, target string) (string, string, error)
}

func (s *stubModuleResolver) Resolve(fromDir, target string) (string, string, error) {
	return s.resolve(fromDir, target)
}
