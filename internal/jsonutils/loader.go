// SPDX-License-Identifier: Apache-2.0

package jsonutils

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// ArrayHint carries the array ordering keywords for one schema location.
// insertionOrder is a resource-schema extension keyword and defaults to true;
// an array is treated as a set only when items are unique and order does not
// matter.
type ArrayHint struct {
	UniqueItems    bool
	InsertionOrder bool
}

// ArrayHints maps dotted schema paths (e.g. "properties.Tags" or
// "definitions.Tag.properties.Values") to their array ordering keywords.
type ArrayHints map[string]ArrayHint

// IsSet reports whether the array at path should resolve to a set.
func (h ArrayHints) IsSet(path string) bool {
	hint, ok := h[path]
	return ok && hint.UniqueItems && !hint.InsertionOrder
}

// Document is a parsed resource provider schema: the JSON Schema body plus
// the provider-specific keywords that sit outside the JSON Schema vocabulary.
type Document struct {
	Schema                *jsonschema.Schema
	TypeName              string
	PrimaryIdentifier     []string
	AdditionalIdentifiers [][]string
	Hints                 ArrayHints
}

// Loader loads resource provider schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a resource provider schema file. Schemas are
// JSON by default; .yaml and .yml files are converted before parsing.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(filePath)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	}

	return ParseDocument(data)
}

// yamlToJSON converts a YAML document to JSON so the schema parser only ever
// sees one encoding.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return out, nil
}

// ParseDocument parses raw resource provider schema JSON.
func ParseDocument(data []byte) (*Document, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	// The provider vocabulary (typeName, identifiers, insertionOrder) is not
	// part of JSON Schema, so it is extracted from the raw document.
	var extra struct {
		TypeName              string     `json:"typeName"`
		PrimaryIdentifier     []string   `json:"primaryIdentifier"`
		AdditionalIdentifiers [][]string `json:"additionalIdentifiers"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse provider keywords: %w", err)
	}

	hints, err := ExtractArrayHints(data)
	if err != nil {
		return nil, err
	}

	return &Document{
		Schema:                &schema,
		TypeName:              extra.TypeName,
		PrimaryIdentifier:     extra.PrimaryIdentifier,
		AdditionalIdentifiers: extra.AdditionalIdentifiers,
		Hints:                 hints,
	}, nil
}

// ExtractArrayHints walks raw schema JSON and records the uniqueItems and
// insertionOrder keywords for every schema object that declares them. The
// typed schema model does not carry insertionOrder, so the raw document is
// the only source for it.
func ExtractArrayHints(data []byte) (ArrayHints, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	hints := make(ArrayHints)
	walkArrayHints(root, "", hints)
	return hints, nil
}

func walkArrayHints(node map[string]any, path string, hints ArrayHints) {
	unique, hasUnique := node["uniqueItems"].(bool)
	order, hasOrder := node["insertionOrder"].(bool)
	if hasUnique || hasOrder {
		hint := ArrayHint{UniqueItems: unique, InsertionOrder: true}
		if hasOrder {
			hint.InsertionOrder = order
		}
		hints[path] = hint
	}

	for _, key := range []string{"properties", "definitions", "$defs", "patternProperties"} {
		children, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		segment := key
		if key == "$defs" {
			// Hint paths use the "definitions" spelling for both keywords.
			segment = "definitions"
		}
		for name, child := range children {
			if childMap, ok := child.(map[string]any); ok {
				walkArrayHints(childMap, joinPath(joinPath(path, segment), name), hints)
			}
		}
	}

	for _, key := range []string{"items", "additionalProperties"} {
		if child, ok := node[key].(map[string]any); ok {
			walkArrayHints(child, joinPath(path, key), hints)
		}
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}
