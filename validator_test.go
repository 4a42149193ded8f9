package ulna_test

import (
	"fmt"
	"sync"
	"testing"

	ulna "github.com/reoring/ulna"
	"github.com/reoring/ulna/dsl"
)

// projectSchema mirrors the documented ulna-project shape: required [program]
// with a required name, optional [dependencies] and [build].
func projectSchema(t *testing.T) *ulna.Validator {
	t.Helper()
	program := dsl.Section("program").
		Field("name", ulna.IsProjectIdentifier).
		Field("description", ulna.IsString).Optional().
		MustBuild()
	dependencies := dsl.Section("dependencies").
		Field("include_dirs", ulna.IsListOfStrings).Optional().
		Field("include_shared", ulna.IsListOfStrings).Optional().
		MustBuild()
	build := dsl.Section("build").
		Field("compiler", ulna.IsCompilerName).Optional().
		Field("additional_flags", ulna.IsListOfStrings).Optional().
		MustBuild()
	return dsl.Object().
		Section(program).
		Section(dependencies).Optional().
		Section(build).Optional().
		MustBuild()
}

func tree(t *testing.T, raw map[string]any) ulna.Value {
	t.Helper()
	return ulna.FromAny(raw)
}

// diagKey identifies a diagnostic by content, ignoring collection order.
func diagKey(d ulna.Diagnostic) string {
	return fmt.Sprintf("%s|%s|%s|%s", d.Code, d.Field, d.Section, d.Expected)
}

func wantDiagnostics(t *testing.T, err error, want ...ulna.Diagnostic) {
	t.Helper()
	ds, ok := ulna.AsDiagnostics(err)
	if !ok {
		t.Fatalf("expected Diagnostics error, got %v", err)
	}
	if len(ds) != len(want) {
		t.Fatalf("expected %d diagnostics, got %d: %v", len(want), len(ds), ds)
	}
	got := map[string]bool{}
	for _, d := range ds {
		got[diagKey(d)] = true
	}
	for _, w := range want {
		if !got[diagKey(w)] {
			t.Errorf("missing diagnostic %+v in %v", w, ds)
		}
	}
}

func TestValidate_EmptyDocumentMissesProgram(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{}))
	wantDiagnostics(t, err, ulna.Diagnostic{Code: ulna.CodeMissingSection, Field: "program"})
}

func TestValidate_MinimalValidDocument(t *testing.T) {
	s := projectSchema(t)
	in := tree(t, map[string]any{"program": map[string]any{"name": "foo-bar"}})
	out, err := s.Validate(in)
	if err != nil {
		t.Fatalf("unexpected diagnostics: %v", err)
	}
	table, ok := out.AsTable()
	if !ok {
		t.Fatalf("expected the original table back")
	}
	program, _ := table["program"].AsTable()
	if name, _ := program["name"].AsString(); name != "foo-bar" {
		t.Fatalf("tree was not returned unchanged, got name %q", name)
	}
}

func TestValidate_RejectsBadProjectIdentifier(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{"program": map[string]any{"name": "foo bar"}}))
	wantDiagnostics(t, err, ulna.Diagnostic{
		Code:     ulna.CodeFieldType,
		Field:    "name",
		Section:  "program",
		Expected: "project identifier",
	})
}

func TestValidate_ReportsUnknownTopLevelKey(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{
		"program": map[string]any{"name": "x"},
		"extra":   "y",
	}))
	wantDiagnostics(t, err, ulna.Diagnostic{Code: ulna.CodeNonexistentField, Field: "extra"})
}

func TestValidate_RejectsUnsupportedCompiler(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{
		"program": map[string]any{"name": "x"},
		"build":   map[string]any{"compiler": "clang"},
	}))
	wantDiagnostics(t, err, ulna.Diagnostic{
		Code:     ulna.CodeFieldType,
		Field:    "compiler",
		Section:  "build",
		Expected: "compiler name",
	})
}

func TestValidate_ReportsUnknownNestedKeyWithSection(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{
		"program": map[string]any{"name": "x", "bogus": 1},
	}))
	wantDiagnostics(t, err, ulna.Diagnostic{
		Code:    ulna.CodeNonexistentField,
		Field:   "bogus",
		Section: "program",
	})
}

func TestValidate_NonTableDocument(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(ulna.StringValue("nope"))
	wantDiagnostics(t, err, ulna.Diagnostic{Code: ulna.CodeSectionKind, Field: "config"})
}

func TestValidate_SectionProvidedAsField(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{
		"program": "not a table",
	}))
	wantDiagnostics(t, err, ulna.Diagnostic{Code: ulna.CodeSectionKind, Field: "program"})
}

// Every independent violation must surface in the same pass.
func TestValidate_AccumulatesAllViolations(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{
		"program": map[string]any{
			"description": 42, // wrong type
			"bogus":       1,  // unknown, name missing too
		},
		"build": map[string]any{
			"compiler":         "clang",           // outside the enumerated set
			"additional_flags": []any{"-O3", true}, // not all strings
		},
		"extra": "y", // unknown at document level
	}))
	wantDiagnostics(t, err,
		ulna.Diagnostic{Code: ulna.CodeMissingField, Field: "name", Section: "program"},
		ulna.Diagnostic{Code: ulna.CodeFieldType, Field: "description", Section: "program", Expected: "string"},
		ulna.Diagnostic{Code: ulna.CodeNonexistentField, Field: "bogus", Section: "program"},
		ulna.Diagnostic{Code: ulna.CodeFieldType, Field: "compiler", Section: "build", Expected: "compiler name"},
		ulna.Diagnostic{Code: ulna.CodeFieldType, Field: "additional_flags", Section: "build", Expected: "list of strings"},
		ulna.Diagnostic{Code: ulna.CodeNonexistentField, Field: "extra"},
	)
}

func TestValidate_Idempotent(t *testing.T) {
	s := projectSchema(t)
	in := tree(t, map[string]any{
		"program": map[string]any{"name": "foo bar"},
		"extra":   "y",
	})
	_, err1 := s.Validate(in)
	_, err2 := s.Validate(in)
	ds1, _ := ulna.AsDiagnostics(err1)
	ds2, _ := ulna.AsDiagnostics(err2)
	if len(ds1) != len(ds2) {
		t.Fatalf("validation is not idempotent: %v vs %v", ds1, ds2)
	}
	for i := range ds1 {
		if ds1[i] != ds2[i] {
			t.Fatalf("diagnostic %d differs between runs: %+v vs %+v", i, ds1[i], ds2[i])
		}
	}
}

func TestValidate_DiagnosticPaths(t *testing.T) {
	s := projectSchema(t)
	_, err := s.Validate(tree(t, map[string]any{
		"program": map[string]any{"name": "foo bar"},
	}))
	ds, _ := ulna.AsDiagnostics(err)
	if len(ds) != 1 || ds[0].Path != "/program/name" {
		t.Fatalf("expected path /program/name, got %v", ds)
	}
}

// A single Validator instance must be reusable from many goroutines.
func TestValidate_ConcurrentReuse(t *testing.T) {
	s := projectSchema(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := tree(t, map[string]any{
				"program": map[string]any{"name": fmt.Sprintf("worker_%c", 'a'+rune(i%26))},
			})
			if _, err := s.Validate(in); err != nil {
				t.Errorf("unexpected diagnostics: %v", err)
			}
		}(i)
	}
	wg.Wait()
}

func TestNewValidator_RejectsDuplicateNames(t *testing.T) {
	_, err := ulna.NewValidator("", []ulna.Field{
		{Name: "a", Predicate: ulna.IsString},
		{Name: "a", Predicate: ulna.IsString},
	}, nil)
	if err == nil {
		t.Fatalf("expected duplicate field names to be rejected at construction")
	}

	child := dsl.Section("a").MustBuild()
	_, err = ulna.NewValidator("", []ulna.Field{
		{Name: "a", Predicate: ulna.IsString},
	}, []ulna.Section{
		{Name: "a", Validator: child},
	})
	if err == nil {
		t.Fatalf("expected field/section name conflict to be rejected at construction")
	}
}

func TestNewValidator_RejectsFieldWithoutPredicate(t *testing.T) {
	_, err := ulna.NewValidator("", []ulna.Field{{Name: "a"}}, nil)
	if err == nil {
		t.Fatalf("expected field without predicate to be rejected")
	}
}
