// Package yaml decodes YAML documents into the generic string-keyed mapping
// consumed by the root package.
package yaml

import (
	yamlv3 "gopkg.in/yaml.v3"
)

// Unmarshal decodes data into a string-keyed mapping. Mappings with
// non-string keys fail to decode; an empty document decodes to an empty
// mapping.
func Unmarshal(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yamlv3.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
