package io

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/genetracks/genetracks/pkg/figure"
)

// ReadYAML decodes a YAML figure document from r.
//
// The YAML tree is converted to JSON and then goes through the same schema
// checks as [ReadJSON], so both formats report identical field paths.
func ReadYAML(r io.Reader) (*figure.Figure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, newParseError("yaml", -1, err, "malformed document")
	}
	if tree == nil {
		return nil, newParseError("yaml", -1, nil, "empty document")
	}

	asJSON, err := json.Marshal(tree)
	if err != nil {
		return nil, newParseError("yaml", -1, err, "unsupported YAML value")
	}
	return decodeJSON("yaml", asJSON)
}

// WriteYAML encodes f as YAML with the same field order as [WriteJSON].
func WriteYAML(f *figure.Figure, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromFigure(f)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}
