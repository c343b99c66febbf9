package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the instance encoding.
type Format int

// Supported instance encodings.
const (
	FormatJSON Format = iota
	FormatYAML
)

// Load reads and validates an instance file. YAML is selected by the .yaml
// or .yml extension; everything else parses as JSON.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance: %w", err)
	}
	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return Parse(data, format)
}

// Parse decodes an instance document and builds a validated Spec. Both
// encodings converge on the same generic document shape before
// normalization, so nothing past this point branches on the encoding.
func Parse(data []byte, format Format) (*Spec, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &SchemaError{Reason: fmt.Sprintf("parse yaml: %v", err)}
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &SchemaError{Reason: fmt.Sprintf("parse json: %v", err)}
		}
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, &SchemaError{Reason: "instance document must be an object"}
	}
	return Build(root)
}
