package flatcache

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLCodec stores entries as a single YAML mapping, in entry order.
// Unlike the line format it supports newlines in keys and values.
//
// Mapping pairs whose key or value is not a scalar are skipped on decode.
type YAMLCodec struct{}

// Decode implements Codec.
func (YAMLCodec) Decode(text string) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to decode yaml: expected a mapping at line %d", root.Line)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			continue
		}
		entries = append(entries, Entry{Key: key.Value, Value: value.Value})
	}
	return entries, nil
}

// Encode implements Codec. No entries encode to an empty document.
func (YAMLCodec) Encode(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range entries {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Value},
		)
	}

	out, err := yaml.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	return string(out), nil
}
