package proptree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses YAML (or JSON, which yaml.v3 accepts) into a tree object.
// The document root must be a mapping.
func FromYAML(data []byte) (Object, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	n, err := FromGo(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := n.(Object)
	if !ok {
		return nil, fmt.Errorf("configuration root must be a mapping, found %T", n)
	}
	return obj, nil
}
