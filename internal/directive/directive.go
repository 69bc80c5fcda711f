// Package directive implements the single-line import directive parser
// and the SDL comment scanner that finds import directives in source
// order.
package directive

import (
	"regexp"
	"strings"

	"github.com/graph-gophers/graphql-import/errors"
)

// Wildcard is the sentinel import name meaning "import everything".
const Wildcard = "*"

// Directive is a single parsed import directive: `# import X, Y from "p"`.
type Directive struct {
	Imports []string
	From    string
}

// Equal reports whether two directives have the same imports (in the same
// order) and the same From string — the equivalence used by the recursive
// collector's (source, directive) re-entry memoization.
func (d Directive) Equal(o Directive) bool {
	if d.From != o.From || len(d.Imports) != len(o.Imports) {
		return false
	}
	for i, name := range d.Imports {
		if o.Imports[i] != name {
			return false
		}
	}
	return true
}

// Key is a comparable representation of a Directive suitable for use as a
// map key, since Go does not allow slices as map keys directly.
func (d Directive) Key() string {
	return strings.Join(d.Imports, ",") + "\x00" + d.From
}

var (
	// "import * from '...'" or "import Name[.field][, Name...] from '...'", optional trailing ';'.
	structureRE = regexp.MustCompile(`^import\s+(.+?)\s+from\s+(.+?)\s*;?\s*$`)
	nameRE      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.([A-Za-z_][A-Za-z0-9_]*|\*))?$`)
)

// ParseLine parses a single logical import line, already stripped of its
// leading comment marker and surrounding whitespace.
func ParseLine(line string) (Directive, error) {
	m := structureRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Directive{}, errors.Errorf(errors.MalformedImport, "not a valid import statement: %q", line)
	}
	namesPart, fromPart := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])

	from, err := unquote(fromPart)
	if err != nil {
		return Directive{}, err
	}
	if from == "" {
		return Directive{}, errors.Errorf(errors.MalformedImport, "import statement has an empty source path: %q", line)
	}

	imports, err := parseNames(namesPart)
	if err != nil {
		return Directive{}, err
	}

	return Directive{Imports: imports, From: from}, nil
}

func unquote(s string) (string, error) {
	if len(s) < 2 {
		return "", errors.Errorf(errors.MalformedImport, "import statement is missing a quoted source path: %q", s)
	}
	first, last := s[0], s[len(s)-1]
	if (first != '\'' && first != '"') || first != last {
		return "", errors.Errorf(errors.MalformedImport, "import statement's source path quotes do not match: %q", s)
	}
	return s[1 : len(s)-1], nil
}

func parseNames(namesPart string) ([]string, error) {
	if namesPart == Wildcard {
		return []string{Wildcard}, nil
	}

	var names []string
	for _, raw := range strings.Split(namesPart, ",") {
		name := strings.TrimSpace(raw)
		if name == "" || !nameRE.MatchString(name) {
			return nil, errors.Errorf(errors.MalformedImport, "invalid import name %q", raw)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, errors.Errorf(errors.MalformedImport, "import statement has an empty name list")
	}
	return names, nil
}

// commentPrefixes are the prefixes of a trimmed line that is itself an import
// directive comment: either "# import ..." or "#import ..." (the required space
// after the keyword disambiguates from unrelated comments).
var commentPrefixes = []string{"# import ", "#import "}

// Scan walks raw SDL text and returns every import directive found, in
// source order. It is line-oriented and never touches the
// AST.
func Scan(sdl string) ([]Directive, error) {
	var directives []Directive
	for _, line := range strings.Split(sdl, "\n") {
		trimmed := strings.TrimSpace(line)
		body, ok := stripCommentPrefix(trimmed)
		if !ok {
			continue
		}
		d, err := ParseLine(body)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func stripCommentPrefix(trimmed string) (string, bool) {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return "import " + strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	return "", false
}
