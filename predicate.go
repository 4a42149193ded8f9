package ulna

import "strings"

// Predicate is a named, pure classifier over a single Value. The name is
// used verbatim in diagnostics (for example "project identifier"), so it
// should read well inside "expected value of type '...'".
type Predicate struct {
	name  string
	check func(Value) bool
}

// NewPredicate builds a Predicate from a name and a check function.
func NewPredicate(name string, check func(Value) bool) Predicate {
	return Predicate{name: name, check: check}
}

// Name returns the name recorded in diagnostics.
func (p Predicate) Name() string { return p.name }

// Check reports whether v satisfies the predicate. The zero Predicate
// rejects everything.
func (p Predicate) Check(v Value) bool {
	if p.check == nil {
		return false
	}
	return p.check(v)
}

// StringEnum builds a predicate that accepts exactly the listed strings.
func StringEnum(name string, allowed ...string) Predicate {
	set := make(map[string]struct{}, len(allowed))
	for _, s := range allowed {
		set[s] = struct{}{}
	}
	return NewPredicate(name, func(v Value) bool {
		s, ok := v.AsString()
		if !ok {
			return false
		}
		_, ok = set[s]
		return ok
	})
}

// IsString accepts any string scalar.
var IsString = NewPredicate("string", func(v Value) bool {
	_, ok := v.AsString()
	return ok
})

// IsListOfStrings accepts a list whose every element is a string.
var IsListOfStrings = NewPredicate("list of strings", func(v Value) bool {
	items, ok := v.AsList()
	if !ok {
		return false
	}
	for _, item := range items {
		if _, ok := item.AsString(); !ok {
			return false
		}
	}
	return true
})

// IsProjectIdentifier accepts one or more non-empty segments joined by "-",
// each segment consisting only of ASCII letters and underscores.
var IsProjectIdentifier = NewPredicate("project identifier", func(v Value) bool {
	s, ok := v.AsString()
	if !ok {
		return false
	}
	for _, segment := range strings.Split(s, "-") {
		if !isIdentifierSegment(segment) {
			return false
		}
	}
	return true
})

// IsCompilerName accepts the supported compiler identifiers. Adding a
// compiler means extending this set (and registering the implementation in
// internal/build); nothing else in this layer changes.
var IsCompilerName = StringEnum("compiler name", "gcc")

func isIdentifierSegment(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		switch {
		case 'a' <= r && r <= 'z':
		case 'A' <= r && r <= 'Z':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
