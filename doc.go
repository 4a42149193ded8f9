package ulna

// Package ulna provides:
//
// - A closed Value model for semi-structured configuration trees (table/list/string/other)
// - Schema-driven validation via immutable Validators with exhaustive diagnostic accumulation
// - A stable diagnostic model (code, path, field/section names) rendered through i18n
// - A load boundary mapping file and syntax failures into a closed LoadError enumeration
//
// Design policy:
// - Keep only public APIs in the root package; put implementations under internal/.
// - Place the schema builder under dsl/, format drivers under source/, and the CLI under cmd/ulna.
// - The core never logs, never exits, and reports every violation as data in one pass.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v := dsl.Object().
//	        Section(programSchema).
//	        Section(buildSchema).Optional().
//	        MustBuild()
//
//	tree, err := ulna.Load("ulna-project.toml")
//	validated, err := v.Validate(tree)
//	for _, d := range diags {
//	        fmt.Println(ulna.RenderDiagnostic(d))
//	}
