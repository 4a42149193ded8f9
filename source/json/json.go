// Package json decodes JSON documents into the generic string-keyed mapping
// consumed by the root package, backed by goccy/go-json.
package json

import (
	"bytes"
	"errors"

	j "github.com/goccy/go-json"
)

// Unmarshal decodes data into a string-keyed mapping. Numbers are kept as
// json.Number to avoid precision loss; trailing content after the document
// is an error.
func Unmarshal(data []byte) (map[string]any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("json: trailing content after document")
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
