// SPDX-License-Identifier: Apache-2.0

package jsonutils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// ResourceModelName is the name of the model generated for the root schema.
const ResourceModelName = "ResourceModel"

// Property is a single resolved property of a model.
type Property struct {
	Name     string
	Type     *ResolvedType
	Required bool
}

// Model is a named set of resolved properties, generated for the root schema,
// for each referenced definition, and for each inline nested object.
type Model struct {
	Name       string
	Properties []Property
}

// ResolveModels resolves a resource provider schema into its models. The root
// model is always first; referenced definitions and extracted inline objects
// follow in the order they are first encountered. Property iteration is
// sorted, so output is deterministic for a given document.
func ResolveModels(doc *Document) ([]Model, error) {
	r := &modelResolver{
		defs:   make(map[string]*jsonschema.Schema),
		hints:  doc.Hints,
		byName: make(map[string]*Model),
	}

	for name, def := range doc.Schema.Defs {
		r.defs[name] = def
	}
	for name, def := range doc.Schema.Definitions {
		r.defs[name] = def
	}

	if err := r.resolveModel(ResourceModelName, doc.Schema, ""); err != nil {
		return nil, err
	}

	models := make([]Model, 0, len(r.order))
	for _, name := range r.order {
		models = append(models, *r.byName[name])
	}
	return models, nil
}

type modelResolver struct {
	defs   map[string]*jsonschema.Schema
	hints  ArrayHints
	byName map[string]*Model
	order  []string
}

func (r *modelResolver) resolveModel(name string, s *jsonschema.Schema, path string) error {
	if _, ok := r.byName[name]; ok {
		return nil
	}

	m := &Model{Name: name}
	// Register before descending so mutually referencing definitions terminate.
	r.byName[name] = m
	r.order = append(r.order, name)

	for _, propName := range sortedKeys(s.Properties) {
		propPath := joinPath(path, "properties."+propName)
		rt, err := r.resolveType(s.Properties[propName], propName, propPath)
		if err != nil {
			return fmt.Errorf("%s: %w", propPath, err)
		}
		m.Properties = append(m.Properties, Property{
			Name:     propName,
			Type:     rt,
			Required: containsString(s.Required, propName),
		})
	}
	return nil
}

func (r *modelResolver) resolveType(s *jsonschema.Schema, fieldName, path string) (*ResolvedType, error) {
	if s == nil {
		return Primitive(Undefined), nil
	}

	if s.Ref != "" {
		return r.resolveRef(s.Ref)
	}

	if len(s.Types) > 0 {
		return r.resolveDeclaredTypes(s, fieldName, path)
	}

	if members := composedMembers(s); len(members) > 0 {
		if len(members) == 1 {
			return r.resolveType(members[0], fieldName, path)
		}
		// The target resolver collapses unions, so only the first member's
		// resolution is retained.
		item, err := r.resolveType(members[0], fieldName, path)
		if err != nil {
			return nil, err
		}
		return Multiple(item), nil
	}

	switch s.Type {
	case "array":
		item, err := r.resolveType(s.Items, fieldName, joinPath(path, "items"))
		if err != nil {
			return nil, err
		}
		if r.hints.IsSet(path) {
			return Set(item), nil
		}
		return List(item), nil
	case "object", "":
		return r.resolveObject(s, fieldName, path)
	case "string", "integer", "number", "boolean":
		return Primitive(s.Type), nil
	default:
		return nil, fmt.Errorf("unsupported schema type %q", s.Type)
	}
}

// resolveDeclaredTypes handles the type-array form ("type": ["string", ...]).
// A single-entry array is equivalent to the scalar form; several entries make
// a union that keeps only the first type's resolution.
func (r *modelResolver) resolveDeclaredTypes(s *jsonschema.Schema, fieldName, path string) (*ResolvedType, error) {
	first := *s
	first.Type = s.Types[0]
	first.Types = nil

	item, err := r.resolveType(&first, fieldName, path)
	if err != nil {
		return nil, err
	}
	if len(s.Types) == 1 {
		return item, nil
	}
	return Multiple(item), nil
}

func (r *modelResolver) resolveObject(s *jsonschema.Schema, fieldName, path string) (*ResolvedType, error) {
	if len(s.Properties) > 0 {
		name := ToPascalCase(fieldName)
		if err := r.resolveModel(name, s, path); err != nil {
			return nil, err
		}
		return ModelRef(name), nil
	}

	if len(s.PatternProperties) > 0 {
		// Resource schemas declare a single uniform value type; with several
		// patterns the first in sorted order wins.
		patterns := sortedKeys(s.PatternProperties)
		item, err := r.resolveType(s.PatternProperties[patterns[0]], fieldName,
			joinPath(path, "patternProperties."+patterns[0]))
		if err != nil {
			return nil, err
		}
		return Dict(item), nil
	}

	if s.AdditionalProperties != nil {
		item, err := r.resolveType(s.AdditionalProperties, fieldName, joinPath(path, "additionalProperties"))
		if err != nil {
			return nil, err
		}
		return Dict(item), nil
	}

	if s.Type == "object" {
		return Dict(Primitive(Undefined)), nil
	}
	return Primitive(Undefined), nil
}

func (r *modelResolver) resolveRef(ref string) (*ResolvedType, error) {
	defName := extractDefName(ref)
	def, ok := r.defs[defName]
	if !ok {
		return nil, fmt.Errorf("unresolved $ref %q", ref)
	}

	defPath := "definitions." + defName
	if len(def.Properties) == 0 && def.Type != "object" {
		// Definitions of scalar or container shapes resolve to their
		// underlying type rather than a model.
		return r.resolveType(def, defName, defPath)
	}

	name := ToPascalCase(defName)
	if err := r.resolveModel(name, def, defPath); err != nil {
		return nil, err
	}
	return ModelRef(name), nil
}

// composedMembers returns the oneOf/anyOf member schemas, if any.
func composedMembers(s *jsonschema.Schema) []*jsonschema.Schema {
	members := make([]*jsonschema.Schema, 0, len(s.OneOf)+len(s.AnyOf))
	members = append(members, s.OneOf...)
	members = append(members, s.AnyOf...)
	return members
}

// extractDefName extracts the definition name from a $ref string.
func extractDefName(ref string) string {
	if name, ok := strings.CutPrefix(ref, "#/definitions/"); ok {
		return name
	}
	if name, ok := strings.CutPrefix(ref, "#/$defs/"); ok {
		return name
	}
	return ref
}

func sortedKeys(m map[string]*jsonschema.Schema) []string {
	keys := make([]string, 0, len(m))
	for name := range m {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// ToPascalCase converts a snake_case or kebab-case string to PascalCase for
// model name generation.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
