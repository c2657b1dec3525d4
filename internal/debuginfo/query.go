package debuginfo

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
)

// Query evaluates a JMESPath expression against v after a JSON round trip, so struct field
// names are the JSON tag names. A non-matching expression yields nil and no error.
func Query(expression string, v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jmespath: encode: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("jmespath: decode: %w", err)
	}
	out, err := jmespath.Search(expression, doc)
	if err != nil {
		return nil, fmt.Errorf("jmespath: %w", err)
	}
	return out, nil
}

// QueryString is Query with the selection coerced to a string. Non-string values are JSON
// encoded; nil means nothing matched.
func QueryString(expression string, v any) (*string, error) {
	out, err := Query(expression, v)
	if err != nil || out == nil {
		return nil, err
	}
	if s, ok := out.(string); ok {
		return &s, nil
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
