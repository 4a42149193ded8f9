package ulna

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes (exported consts for IDE completion and type safety by convention)
const (
	CodeSectionKind      = "section_kind"
	CodeMissingField     = "missing_field"
	CodeFieldType        = "field_type"
	CodeMissingSection   = "missing_section"
	CodeNonexistentField = "nonexistent_field"
)

// Diagnostic represents a single schema violation. It carries every name
// needed to localize and render the violation without access back into the
// tree or the schema.
type Diagnostic struct {
	Path     string // slash path to the offending entry (for example: /program/name)
	Code     string // one of the codes listed above
	Field    string // field or section name the diagnostic localizes
	Section  string // enclosing section name; empty at document level
	Expected string // predicate name, set for field_type only
}

// Diagnostics is the collection of schema violations found in one validation
// pass. It implements error.
type Diagnostics []Diagnostic

// Error summarizes the first few diagnostics.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ds)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		d := ds[i]
		// e.g. missing_field at /program/name
		fmt.Fprintf(b, "%s at %s", d.Code, d.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendDiagnostics appends diagnostics to the destination, initializing the
// slice when needed.
func AppendDiagnostics(dst Diagnostics, more ...Diagnostic) Diagnostics {
	if dst == nil {
		dst = Diagnostics{}
	}
	dst = append(dst, more...)
	return dst
}

// AsDiagnostics extracts Diagnostics from an error using errors.As internally.
func AsDiagnostics(err error) (Diagnostics, bool) {
	if err == nil {
		return nil, false
	}
	var ds Diagnostics
	if errors.As(err, &ds) {
		return ds, true
	}
	return nil, false
}
