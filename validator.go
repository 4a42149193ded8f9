package ulna

import (
	"fmt"
	"sort"
)

// Field describes a leaf entry expected directly under a section, checked by
// a predicate.
type Field struct {
	Name      string
	Predicate Predicate
	Optional  bool
}

// Section describes a nested table expected under a parent schema, governed
// by its own sub-schema.
type Section struct {
	Name      string
	Validator *Validator
	Optional  bool
}

// Validator matches a tree node against a declared schema, accumulating every
// violation instead of failing fast. A Validator is immutable once built and
// may be shared across any number of concurrent Validate calls.
type Validator struct {
	sectionName string // empty for the document-level schema
	fields      []Field
	sections    []Section
	known       map[string]struct{} // field names ∪ section names
}

// NewValidator assembles a Validator from descriptor lists. Duplicate names
// within one schema, a name registered as both a field and a section, a field
// without a predicate, or a section without a validator are construction-time
// errors, never runtime diagnostics. The dsl package is the usual way to call
// this.
func NewValidator(sectionName string, fields []Field, sections []Section) (*Validator, error) {
	known := make(map[string]struct{}, len(fields)+len(sections))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("ulna: schema %q declares a field with no name", sectionName)
		}
		if f.Predicate.check == nil {
			return nil, fmt.Errorf("ulna: field %q in schema %q has no predicate", f.Name, sectionName)
		}
		if _, dup := known[f.Name]; dup {
			return nil, fmt.Errorf("ulna: duplicate entry %q in schema %q", f.Name, sectionName)
		}
		known[f.Name] = struct{}{}
	}
	for _, s := range sections {
		if s.Name == "" {
			return nil, fmt.Errorf("ulna: schema %q declares a section with no name", sectionName)
		}
		if s.Validator == nil {
			return nil, fmt.Errorf("ulna: section %q in schema %q has no validator", s.Name, sectionName)
		}
		if _, dup := known[s.Name]; dup {
			return nil, fmt.Errorf("ulna: duplicate entry %q in schema %q", s.Name, sectionName)
		}
		known[s.Name] = struct{}{}
	}
	v := &Validator{
		sectionName: sectionName,
		fields:      append([]Field(nil), fields...),
		sections:    append([]Section(nil), sections...),
		known:       known,
	}
	return v, nil
}

// SectionName returns the name this schema is registered under, empty for
// the document-level schema.
func (v *Validator) SectionName() string { return v.sectionName }

// Name returns the display name of the validated node.
func (v *Validator) Name() string {
	if v.sectionName == "" {
		return "config"
	}
	return v.sectionName
}

// Validate matches tree against the schema. On success it returns the
// original tree, now guaranteed to satisfy the schema. On failure the error
// is a Diagnostics value carrying every violation found in one pass; no
// ordering is guaranteed between independent entries, but reporting is
// deterministic for a given tree.
func (v *Validator) Validate(tree Value) (Value, error) {
	ds := v.validateAt(tree, "")
	if len(ds) > 0 {
		return Value{}, ds
	}
	return tree, nil
}

func (v *Validator) validateAt(tree Value, base string) Diagnostics {
	table, ok := tree.AsTable()
	if !ok {
		// The node is not shaped like a section at all; nothing below it is
		// meaningful to inspect.
		return Diagnostics{{
			Path:  pathOrRoot(base),
			Code:  CodeSectionKind,
			Field: v.Name(),
		}}
	}

	var ds Diagnostics

	unknown := make([]string, 0, len(table))
	for key := range table {
		if _, recognized := v.known[key]; !recognized {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		ds = AppendDiagnostics(ds, Diagnostic{
			Path:    base + "/" + key,
			Code:    CodeNonexistentField,
			Field:   key,
			Section: v.sectionName,
		})
	}

	for _, f := range v.fields {
		value, present := table[f.Name]
		switch {
		case !present && f.Optional:
			// absent and optional: simply unset
		case !present:
			ds = AppendDiagnostics(ds, Diagnostic{
				Path:    base + "/" + f.Name,
				Code:    CodeMissingField,
				Field:   f.Name,
				Section: v.sectionName,
			})
		case !f.Predicate.Check(value):
			ds = AppendDiagnostics(ds, Diagnostic{
				Path:     base + "/" + f.Name,
				Code:     CodeFieldType,
				Field:    f.Name,
				Section:  v.sectionName,
				Expected: f.Predicate.Name(),
			})
		}
	}

	for _, s := range v.sections {
		child, present := table[s.Name]
		switch {
		case !present && s.Optional:
		case !present:
			ds = AppendDiagnostics(ds, Diagnostic{
				Path:    base + "/" + s.Name,
				Code:    CodeMissingSection,
				Field:   s.Name,
				Section: v.sectionName,
			})
		default:
			ds = AppendDiagnostics(ds, s.Validator.validateAt(child, base+"/"+s.Name)...)
		}
	}

	return ds
}

func pathOrRoot(base string) string {
	if base == "" {
		return "/"
	}
	return base
}
