// Package config declares the ulna project-file scheme and its typed
// projection.
//
// The scheme mirrors the documented shape of ulna-project.toml:
//
//	[program]            # required
//	name = "..."         # required, project identifier
//	description = "..."  # optional
//
//	[dependencies]       # optional
//	include_dirs   = ["..."]
//	include_shared = ["..."]
//
//	[build]              # optional
//	compiler = "gcc"
//	additional_flags = ["..."]
package config

import (
	ulna "github.com/reoring/ulna"
	"github.com/reoring/ulna/dsl"
)

// Section and field names of the project scheme.
const (
	SectionProgram      = "program"
	SectionDependencies = "dependencies"
	SectionBuild        = "build"

	FieldName            = "name"
	FieldDescription     = "description"
	FieldIncludeDirs     = "include_dirs"
	FieldIncludeShared   = "include_shared"
	FieldCompiler        = "compiler"
	FieldAdditionalFlags = "additional_flags"
)

var programSection = dsl.Section(SectionProgram).
	Field(FieldName, ulna.IsProjectIdentifier).
	Field(FieldDescription, ulna.IsString).Optional().
	MustBuild()

var dependenciesSection = dsl.Section(SectionDependencies).
	Field(FieldIncludeDirs, ulna.IsListOfStrings).Optional().
	Field(FieldIncludeShared, ulna.IsListOfStrings).Optional().
	MustBuild()

var buildSection = dsl.Section(SectionBuild).
	Field(FieldCompiler, ulna.IsCompilerName).Optional().
	Field(FieldAdditionalFlags, ulna.IsListOfStrings).Optional().
	MustBuild()

var scheme = dsl.Object().
	Section(programSection).
	Section(dependenciesSection).Optional().
	Section(buildSection).Optional().
	MustBuild()

// Schema returns the validator for ulna project files. It is built once at
// init and safe to share across goroutines.
func Schema() *ulna.Validator { return scheme }

// Config is the typed projection of a validated project file. Slice fields
// are nil when the corresponding entry was not provided.
type Config struct {
	Program      ProgramSection
	Dependencies DependenciesSection
	Build        BuildSection
}

// ProgramSection carries the required [program] section.
type ProgramSection struct {
	Name        string
	Description string
}

// DependenciesSection carries the optional [dependencies] section.
type DependenciesSection struct {
	IncludeDirs   []string
	IncludeShared []string
}

// BuildSection carries the optional [build] section. Compiler is empty when
// unset; internal/build substitutes its default.
type BuildSection struct {
	Compiler        string
	AdditionalFlags []string
}

// Load reads, validates and projects the project file at path. A non-nil
// error is either a *ulna.LoadError (acquisition tier) or ulna.Diagnostics
// (schema tier), never both.
func Load(path string) (Config, error) {
	tree, err := ulna.Load(path)
	if err != nil {
		return Config{}, err
	}
	return FromTree(tree)
}

// FromTree validates an already-decoded tree against the project scheme and
// projects it into a Config.
func FromTree(tree ulna.Value) (Config, error) {
	validated, err := scheme.Validate(tree)
	if err != nil {
		return Config{}, err
	}
	return project(validated), nil
}

// project assumes tree already passed validation, so shape lookups cannot
// fail; absent optional entries project to zero values.
func project(tree ulna.Value) Config {
	root, _ := tree.AsTable()
	var cfg Config

	program, _ := root[SectionProgram].AsTable()
	cfg.Program.Name = stringAt(program, FieldName)
	cfg.Program.Description = stringAt(program, FieldDescription)

	if deps, ok := root[SectionDependencies].AsTable(); ok {
		cfg.Dependencies.IncludeDirs = stringsAt(deps, FieldIncludeDirs)
		cfg.Dependencies.IncludeShared = stringsAt(deps, FieldIncludeShared)
	}

	if build, ok := root[SectionBuild].AsTable(); ok {
		cfg.Build.Compiler = stringAt(build, FieldCompiler)
		cfg.Build.AdditionalFlags = stringsAt(build, FieldAdditionalFlags)
	}

	return cfg
}

func stringAt(table map[string]ulna.Value, key string) string {
	s, _ := table[key].AsString()
	return s
}

func stringsAt(table map[string]ulna.Value, key string) []string {
	value, present := table[key]
	if !present {
		return nil
	}
	items, _ := value.AsList()
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, _ := item.AsString()
		out = append(out, s)
	}
	return out
}
