package codec

import (
	"github.com/goccy/go-json"
)

// EncodeRegional serializes a region -> value map as one JSON object.
// A nil map encodes as an empty object.
func EncodeRegional[V any](m map[string]V) (string, error) {
	if m == nil {
		m = map[string]V{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeRegional parses a document written by EncodeRegional. An empty document or a JSON null
// yields an empty, non-nil map.
func DecodeRegional[V any](doc string) (map[string]V, error) {
	m := map[string]V{}
	if doc == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]V{}
	}
	return m, nil
}
