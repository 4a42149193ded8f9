package ulna

import (
	"io"

	jsonsrc "github.com/reoring/ulna/source/json"
	tomlsrc "github.com/reoring/ulna/source/toml"
	yamlsrc "github.com/reoring/ulna/source/yaml"
)

// Source abstracts over polymorphic document inputs. Decode parses the whole
// input once and returns the normalized Value tree; implementations do not
// retain the input afterwards.
type Source interface {
	Decode() (Value, error)
	Format() string
}

// driverSource adapts a format driver producing map[string]any into a Source.
type driverSource struct {
	format string
	decode func() (map[string]any, error)
}

func (s driverSource) Decode() (Value, error) {
	m, err := s.decode()
	if err != nil {
		return Value{}, err
	}
	return FromAny(m), nil
}

func (s driverSource) Format() string { return s.format }

// TOMLBytes wraps a byte slice as a TOML Source. TOML is the canonical
// project-file format.
func TOMLBytes(b []byte) Source {
	return driverSource{format: "toml", decode: func() (map[string]any, error) {
		return tomlsrc.Unmarshal(b)
	}}
}

// TOMLReader wraps an io.Reader as a TOML Source.
func TOMLReader(r io.Reader) Source {
	return driverSource{format: "toml", decode: func() (map[string]any, error) {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return tomlsrc.Unmarshal(b)
	}}
}

// YAMLBytes wraps a byte slice as a YAML Source. Documents whose top level is
// not a string-keyed mapping fail to decode.
func YAMLBytes(b []byte) Source {
	return driverSource{format: "yaml", decode: func() (map[string]any, error) {
		return yamlsrc.Unmarshal(b)
	}}
}

// JSONBytes wraps a byte slice as a JSON Source. Numbers are preserved as
// json.Number scalars.
func JSONBytes(b []byte) Source {
	return driverSource{format: "json", decode: func() (map[string]any, error) {
		return jsonsrc.Unmarshal(b)
	}}
}
