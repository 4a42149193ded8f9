package ulna

import (
	"strings"

	"github.com/reoring/ulna/i18n"
)

// RenderDiagnostic renders a single diagnostic into its user-facing message.
// Rendering is pure and uses only the fields stored on the diagnostic.
func RenderDiagnostic(d Diagnostic) string {
	return i18n.T(d.Code, map[string]string{
		"field":    d.Field,
		"section":  d.Section,
		"expected": d.Expected,
	})
}

// RenderDiagnostics renders every diagnostic, one message per line.
func RenderDiagnostics(ds Diagnostics) string {
	lines := make([]string, 0, len(ds))
	for _, d := range ds {
		lines = append(lines, RenderDiagnostic(d))
	}
	return strings.Join(lines, "\n")
}

// RenderLoadError renders an acquisition failure into its user-facing
// message.
func RenderLoadError(e *LoadError) string {
	return i18n.T(e.Kind.String(), map[string]string{"path": e.Path})
}
