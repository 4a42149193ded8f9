package ulna_test

import (
	"strings"
	"testing"

	ulna "github.com/reoring/ulna"
)

// The three format drivers must normalize equivalent documents into the same
// Value shape.
func TestSources_EquivalentTrees(t *testing.T) {
	sources := map[string]ulna.Source{
		"toml": ulna.TOMLBytes([]byte("[program]\nname = \"demo\"\nflags = [\"a\", \"b\"]\n")),
		"yaml": ulna.YAMLBytes([]byte("program:\n  name: demo\n  flags: [a, b]\n")),
		"json": ulna.JSONBytes([]byte(`{"program": {"name": "demo", "flags": ["a", "b"]}}`)),
	}
	for format, src := range sources {
		t.Run(format, func(t *testing.T) {
			if src.Format() != format {
				t.Fatalf("format = %q, want %q", src.Format(), format)
			}
			v, err := src.Decode()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			table, ok := v.AsTable()
			if !ok {
				t.Fatalf("document level should be a table")
			}
			program, ok := table["program"].AsTable()
			if !ok {
				t.Fatalf("program should be a table")
			}
			if name, _ := program["name"].AsString(); name != "demo" {
				t.Fatalf("name = %q", name)
			}
			flags, ok := program["flags"].AsList()
			if !ok || len(flags) != 2 {
				t.Fatalf("flags not decoded as a two-element list: %v", program["flags"])
			}
			if !ulna.IsListOfStrings.Check(program["flags"]) {
				t.Fatalf("flags should satisfy list-of-strings in every format")
			}
		})
	}
}

func TestSources_EmptyDocuments(t *testing.T) {
	for format, src := range map[string]ulna.Source{
		"toml": ulna.TOMLBytes(nil),
		"yaml": ulna.YAMLBytes(nil),
	} {
		v, err := src.Decode()
		if err != nil {
			t.Fatalf("%s: decode empty: %v", format, err)
		}
		if table, ok := v.AsTable(); !ok || len(table) != 0 {
			t.Fatalf("%s: empty document should decode to an empty table", format)
		}
	}
}

func TestSources_MalformedInput(t *testing.T) {
	for format, src := range map[string]ulna.Source{
		"toml": ulna.TOMLBytes([]byte("[broken")),
		"yaml": ulna.YAMLBytes([]byte("a: [1, 2")),
		"json": ulna.JSONBytes([]byte(`{"a":`)),
	} {
		if _, err := src.Decode(); err == nil {
			t.Errorf("%s: expected a decode error", format)
		}
	}
}

func TestJSONBytes_TrailingContent(t *testing.T) {
	_, err := ulna.JSONBytes([]byte(`{"a": 1} {"b": 2}`)).Decode()
	if err == nil {
		t.Fatalf("trailing content should be rejected")
	}
}

func TestTOMLReader(t *testing.T) {
	v, err := ulna.TOMLReader(strings.NewReader("[program]\nname = \"demo\"\n")).Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := v.AsTable(); !ok {
		t.Fatalf("expected table")
	}
}
