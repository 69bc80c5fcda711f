// Package graphqlimport bundles a modular GraphQL SDL corpus — split across
// files that declare inter-file dependencies via comment-form import
// directives (`# import X, Y from "path"` or `# import * from "path"`) —
// into a single, self-contained, type-graph-closed schema document.
//
// The entry point is Import. It accepts either a filesystem path ending in
// ".graphql" or a literal SDL string, resolves every import transitively,
// filters each file's definitions to those requested, merges root
// operation types field-wise, closes the type-reference graph starting
// from the root file's admissions, and prints the result.
package graphqlimport
