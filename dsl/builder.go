// Package dsl provides the chainable builder used to declare ulna schemas.
//
// Entry points
//   - Object(): create a builder for the document-level schema.
//   - Section(name): create a builder for a named nested section schema.
//
// Chain Field/Section registrations, mark the most recent entry with
// Optional(), then freeze with Build()/MustBuild(). The returned Validator is
// immutable; the builder exposes no further mutation path into it.
package dsl

import (
	ulna "github.com/reoring/ulna"
)

// Builder accumulates fields and sections for one schema node. Registration
// order determines only the traversal order during diagnostic collection,
// not correctness.
type Builder struct {
	name     string
	fields   []ulna.Field
	sections []ulna.Section
}

// Object creates a builder for the document-level schema.
func Object() *Builder { return &Builder{} }

// Section creates a builder for a nested section schema registered under
// name.
func Section(name string) *Builder { return &Builder{name: name} }

// FieldStep refers to the field just registered so the chain can mark it
// optional. It proxies the builder methods.
type FieldStep struct{ b *Builder }

// SectionStep refers to the section just registered. It proxies the builder
// methods.
type SectionStep struct{ b *Builder }

// Field registers a field checked by the predicate. Fields are required
// unless the chain marks them Optional.
func (b *Builder) Field(name string, p ulna.Predicate) *FieldStep {
	b.fields = append(b.fields, ulna.Field{Name: name, Predicate: p})
	return &FieldStep{b: b}
}

// Section registers a sub-section governed by child, keyed by the child's
// own section name. Sections are required unless the chain marks them
// Optional.
func (b *Builder) Section(child *ulna.Validator) *SectionStep {
	var name string
	if child != nil {
		name = child.SectionName()
	}
	b.sections = append(b.sections, ulna.Section{Name: name, Validator: child})
	return &SectionStep{b: b}
}

// Build freezes the accumulated fields and sections into an immutable
// Validator. Duplicate or conflicting entry names are reported here, at
// construction time.
func (b *Builder) Build() (*ulna.Validator, error) {
	return ulna.NewValidator(b.name, b.fields, b.sections)
}

// MustBuild is like Build but panics on error. Schema literals are static,
// so a failure here is a programmer error.
func (b *Builder) MustBuild() *ulna.Validator {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}

// Optional marks the field just registered as optional and returns the
// builder.
func (f *FieldStep) Optional() *Builder {
	f.b.fields[len(f.b.fields)-1].Optional = true
	return f.b
}

func (f *FieldStep) Field(name string, p ulna.Predicate) *FieldStep { return f.b.Field(name, p) }
func (f *FieldStep) Section(child *ulna.Validator) *SectionStep     { return f.b.Section(child) }
func (f *FieldStep) Build() (*ulna.Validator, error)                { return f.b.Build() }
func (f *FieldStep) MustBuild() *ulna.Validator                     { return f.b.MustBuild() }

// Optional marks the section just registered as optional and returns the
// builder.
func (s *SectionStep) Optional() *Builder {
	s.b.sections[len(s.b.sections)-1].Optional = true
	return s.b
}

func (s *SectionStep) Field(name string, p ulna.Predicate) *FieldStep { return s.b.Field(name, p) }
func (s *SectionStep) Section(child *ulna.Validator) *SectionStep     { return s.b.Section(child) }
func (s *SectionStep) Build() (*ulna.Validator, error)                { return s.b.Build() }
func (s *SectionStep) MustBuild() *ulna.Validator                     { return s.b.MustBuild() }
