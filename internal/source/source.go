// Package source maps an import target, as written in a directive's
// "from" string, to a canonical source key and its SDL text.
package source

import (
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/graph-gophers/graphql-import/errors"
)

// ModuleResolver is the package-like-resource lookup used when a relative
// ".graphql" path does not exist on disk. This module specifies only the
// contract, not a real module-resolution convention.
type ModuleResolver interface {
	// Resolve looks up target as seen from fromDir and returns its
	// canonical path and contents, or fails.
	Resolve(fromDir, target string) (canonicalKey, text string, err error)
}

// NoModuleResolver is the default ModuleResolver: it always fails. Callers
// that want package-style lookup (e.g. a node_modules-style convention)
// supply their own implementation via WithModuleResolver.
type NoModuleResolver struct{}

// Resolve always fails; see NoModuleResolver.
func (NoModuleResolver) Resolve(fromDir, target string) (string, string, error) {
	return "", "", errors.Errorf(errors.SourceReadFailure, "no module resolver configured to locate %q from %q", target, fromDir)
}

// Resolver resolves import targets against an optional in-memory map of
// logical sources and an optional filesystem module resolver.
type Resolver struct {
	// Logical maps a logical source name to its SDL text, supplied by the
	// caller as an in-memory stand-in for sources not read off disk.
	Logical map[string]string
	// Module is consulted when a relative ".graphql" lookup misses on
	// disk.
	Module ModuleResolver
}

// New builds a Resolver with the given logical sources. A nil Module
// defaults to NoModuleResolver.
func New(logical map[string]string, module ModuleResolver) *Resolver {
	if module == nil {
		module = NoModuleResolver{}
	}
	return &Resolver{Logical: logical, Module: module}
}

// isGraphQLPath reports whether a "from"/current key looks like a
// filesystem path rather than a logical name.
func isGraphQLPath(s string) bool {
	return strings.HasSuffix(s, ".graphql")
}

// Resolve maps from, as written in a directive following currentKey, to a
// canonical key and the source text at that key.
func (r *Resolver) Resolve(currentKey, from string) (key string, text string, err error) {
	if isGraphQLPath(currentKey) && isGraphQLPath(from) {
		return r.resolvePath(currentKey, from)
	}
	return r.resolveLogical(from)
}

func (r *Resolver) resolvePath(currentKey, from string) (string, string, error) {
	dir := filepath.Dir(currentKey)
	candidate := from
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(dir, from)
	}

	if _, statErr := os.Stat(candidate); statErr == nil {
		canonical, err := canonicalize(candidate)
		if err != nil {
			return "", "", errors.Wrap(errors.SourceReadFailure, err, "resolving canonical path for %q", candidate)
		}
		data, err := os.ReadFile(canonical)
		if err != nil {
			return "", "", errors.Wrap(errors.SourceReadFailure, err, "reading %q", canonical)
		}
		return canonical, string(data), nil
	} else if !os.IsNotExist(statErr) {
		return "", "", errors.Wrap(errors.SourceReadFailure, pkgerrors.WithStack(statErr), "statting %q", candidate)
	}

	key, text, err := r.Module.Resolve(dir, from)
	if err != nil {
		return "", "", err
	}
	return key, text, nil
}

func (r *Resolver) resolveLogical(from string) (string, string, error) {
	text, ok := r.Logical[from]
	if !ok {
		return "", "", errors.Errorf(errors.SourceReadFailure, "logical source %q was not supplied", from)
	}
	return from, text, nil
}

// canonicalize resolves symlinks and returns an absolute path, the
// canonical key for filesystem sources.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// IsEffectivelyEmpty reports whether sdl has no non-comment, non-blank
// lines, in which case it is legal and parses to an empty document.
func IsEffectivelyEmpty(sdl string) bool {
	for _, line := range strings.Split(sdl, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return false
	}
	return true
}
