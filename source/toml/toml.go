// Package toml decodes TOML documents into the generic string-keyed mapping
// consumed by the root package.
package toml

import (
	btoml "github.com/BurntSushi/toml"
)

// Unmarshal decodes data into a string-keyed mapping. An empty document
// decodes to an empty mapping.
func Unmarshal(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := btoml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
