package ulna

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadErrorKind enumerates the closed set of acquisition failures.
type LoadErrorKind int

const (
	LoadNotFound LoadErrorKind = iota
	LoadPermissionDenied
	LoadMalformedSyntax
)

// String returns the code name for the kind.
func (k LoadErrorKind) String() string {
	switch k {
	case LoadNotFound:
		return "file_not_found"
	case LoadPermissionDenied:
		return "permission_denied"
	default:
		return "malformed_syntax"
	}
}

// LoadError reports a failure to acquire or parse a configuration document.
// Acquisition failures are terminal and mutually exclusive with schema
// diagnostics: a document that fails to load never reaches validation.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error // underlying cause, when available
}

// Error implements error with a short technical summary; use RenderLoadError
// for the user-facing message.
func (e *LoadError) Error() string {
	return fmt.Sprintf("ulna: %s: %q", e.Kind, e.Path)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *LoadError) Unwrap() error { return e.Err }

// AsLoadError extracts a *LoadError from an error using errors.As internally.
func AsLoadError(err error) (*LoadError, bool) {
	if err == nil {
		return nil, false
	}
	var le *LoadError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// Load reads and parses the TOML document at path into a Value tree. A
// non-nil error is always a *LoadError. Load performs no schema validation;
// that is a strictly separate, subsequent Validate call.
func Load(path string) (Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return Value{}, &LoadError{Kind: LoadPermissionDenied, Path: path, Err: err}
		}
		// Not-exist and every other read failure: the document is
		// unavailable at this path.
		return Value{}, &LoadError{Kind: LoadNotFound, Path: path, Err: err}
	}
	return LoadSource(path, TOMLBytes(raw))
}

// LoadSource decodes an already-acquired document through its source driver,
// mapping any decode failure to a malformed-syntax *LoadError carrying path.
func LoadSource(path string, src Source) (Value, error) {
	v, err := src.Decode()
	if err != nil {
		return Value{}, &LoadError{Kind: LoadMalformedSyntax, Path: path, Err: err}
	}
	return v, nil
}
