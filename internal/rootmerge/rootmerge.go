// Package rootmerge computes the closure engine's seed set by merging
// root operation type fields across every visited file and unioning them
// with the root file's other admissions.
package rootmerge

import "github.com/graph-gophers/graphql-import/internal/definition"

// Seed computes the closure engine's initial pool from the collector's
// flattened typeDefinitions:
//
//  1. Collect every definition named Query/Mutation/Subscription across
//     all files, preserving source order.
//  2. Collect every other definition admitted by the root file
//     (typeDefinitions[0]).
//  3. Concatenate root types first, then the root file's non-root
//     admissions.
//  4. Merge same-named definitions by appending fields to the first
//     pooled copy.
func Seed(typeDefinitions [][]definition.Definition) []definition.Definition {
	var rootTypes []definition.Definition
	for _, perFile := range typeDefinitions {
		for _, d := range perFile {
			if definition.IsRootOperationType(d.Name()) {
				rootTypes = append(rootTypes, d)
			}
		}
	}

	var rootFileOthers []definition.Definition
	if len(typeDefinitions) > 0 {
		for _, d := range typeDefinitions[0] {
			if !definition.IsRootOperationType(d.Name()) {
				rootFileOthers = append(rootFileOthers, d)
			}
		}
	}

	return mergeByName(append(append([]definition.Definition{}, rootTypes...), rootFileOthers...))
}

// mergeByName walks definitions in order; the first occurrence of a name
// is cloned into the pool, and every later occurrence of the same name has
// its fields appended to that pooled copy in place.
func mergeByName(definitions []definition.Definition) []definition.Definition {
	index := map[string]int{}
	var pool []definition.Definition
	for _, d := range definitions {
		if i, ok := index[d.Name()]; ok {
			pool[i].AppendFields(d)
			continue
		}
		clone := d.Clone()
		index[d.Name()] = len(pool)
		pool = append(pool, clone)
	}
	return pool
}
