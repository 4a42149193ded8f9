package ulna

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindTable  Kind = iota // string-keyed mapping
	KindList               // ordered sequence
	KindString             // text scalar
	KindOther              // any other scalar (integers, booleans, dates, ...)
)

// String returns the kind name used in messages.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindList:
		return "list"
	case KindString:
		return "string"
	default:
		return "other"
	}
}

// Value is a node of the generic tree produced by parsing a configuration
// document: a table, a list, a string, or some other scalar. Values are
// immutable by convention; the validator never mutates or retains them.
type Value struct {
	kind  Kind
	table map[string]Value
	list  []Value
	str   string
	other any
}

// TableValue wraps a string-keyed mapping as a Value.
func TableValue(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{kind: KindTable, table: entries}
}

// ListValue wraps an ordered sequence as a Value.
func ListValue(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// StringValue wraps a text scalar as a Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// OtherValue wraps any scalar not otherwise classified as a Value.
func OtherValue(v any) Value {
	return Value{kind: KindOther, other: v}
}

// Kind reports which variant the Value holds.
func (v Value) Kind() Kind { return v.kind }

// AsTable returns the mapping when the Value is a table. The zero Value is
// not a table (nor any other variant), so lookups of absent keys in a table
// yield a Value matching nothing.
func (v Value) AsTable() (map[string]Value, bool) {
	if v.kind != KindTable || v.table == nil {
		return nil, false
	}
	return v.table, true
}

// AsList returns the sequence when the Value is a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// AsString returns the text when the Value is a string scalar.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsOther returns the raw scalar when the Value is neither a table, a list
// nor a string.
func (v Value) AsOther() (any, bool) {
	if v.kind != KindOther {
		return nil, false
	}
	return v.other, true
}

// FromAny normalizes decoder output (nested map[string]any / []any / scalars)
// into the closed Value union. This is the single place where dynamic shapes
// are classified; everything downstream switches exhaustively on Kind.
func FromAny(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case map[string]any:
		entries := make(map[string]Value, len(x))
		for k, item := range x {
			entries[k] = FromAny(item)
		}
		return TableValue(entries)
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			items = append(items, FromAny(item))
		}
		return ListValue(items...)
	case []map[string]any:
		// TOML array-of-tables decodes with this concrete element type.
		items := make([]Value, 0, len(x))
		for _, item := range x {
			items = append(items, FromAny(item))
		}
		return ListValue(items...)
	case string:
		return StringValue(x)
	default:
		return OtherValue(v)
	}
}
