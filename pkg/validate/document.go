package validate

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// ParseDocument reads a configuration file and returns it as a generic
// document tree. YAML and JSON are both accepted; YAML is converted to JSON
// before decoding so the result can be matched against a JSON schema.
func ParseDocument(r io.Reader) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	jsonb, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(jsonb, &doc); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return doc, nil
}
