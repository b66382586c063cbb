/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeDocument decodes rendered template output into a class-keyed
// document. Scalars are preserved verbatim rather than coerced to Go types:
// ACI attributes are strings on the wire, and values like "1", "yes" or
// leading-zero IDs must survive the round trip. The literal "nan"
// (case-insensitive) decodes to the empty string.
func DecodeDocument(data []byte) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return map[string]any{}, nil
	}
	value, err := decodeNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	doc, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be a mapping, got %T", value)
	}
	return doc, nil
}

func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			value, err := decodeNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = value
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			value, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			s = append(s, value)
		}
		return s, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		if strings.EqualFold(strings.TrimSpace(n.Value), "nan") {
			return "", nil
		}
		return n.Value, nil
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	default:
		return nil, fmt.Errorf("unsupported node kind %v at line %d", n.Kind, n.Line)
	}
}
