// SPDX-License-Identifier: Apache-2.0

// Package jsonutils resolves resource provider schemas into typed models.
package jsonutils

import "fmt"

// ContainerType identifies how a resolved type wraps (or doesn't wrap) its
// inner type.
type ContainerType int

const (
	// ContainerPrimitive is a scalar schema type (string, integer, ...).
	ContainerPrimitive ContainerType = iota
	// ContainerModel is a reference to a named, generated model.
	ContainerModel
	// ContainerDict is an object with string keys and a uniform value type.
	ContainerDict
	// ContainerList is an ordered array.
	ContainerList
	// ContainerSet is an unordered array with unique items.
	ContainerSet
	// ContainerMultiple is a union of several schema types, collapsed by the
	// target language resolver.
	ContainerMultiple
)

func (c ContainerType) String() string {
	switch c {
	case ContainerPrimitive:
		return "PRIMITIVE"
	case ContainerModel:
		return "MODEL"
	case ContainerDict:
		return "DICT"
	case ContainerList:
		return "LIST"
	case ContainerSet:
		return "SET"
	case ContainerMultiple:
		return "MULTIPLE"
	default:
		return fmt.Sprintf("ContainerType(%d)", int(c))
	}
}

// Undefined is the primitive kind assigned to schema nodes with no declared
// type. It is distinct from the JSON Schema "object" type.
const Undefined = "undefined"

// ResolvedType is a node in the resolved type tree for a schema property.
// Exactly one of Type or Item is meaningful, depending on Container:
// Type holds the primitive kind for ContainerPrimitive and the model name for
// ContainerModel; Item holds the nested type for Dict, List, Set and Multiple.
// Values are never mutated after construction.
type ResolvedType struct {
	Container ContainerType
	Type      string
	Item      *ResolvedType
}

// Primitive returns a resolved primitive of the given kind.
func Primitive(kind string) *ResolvedType {
	return &ResolvedType{Container: ContainerPrimitive, Type: kind}
}

// ModelRef returns a resolved reference to the named model.
func ModelRef(name string) *ResolvedType {
	return &ResolvedType{Container: ContainerModel, Type: name}
}

// Dict returns a resolved string-keyed map of item.
func Dict(item *ResolvedType) *ResolvedType {
	return &ResolvedType{Container: ContainerDict, Item: item}
}

// List returns a resolved ordered array of item.
func List(item *ResolvedType) *ResolvedType {
	return &ResolvedType{Container: ContainerList, Item: item}
}

// Set returns a resolved unique-item array of item.
func Set(item *ResolvedType) *ResolvedType {
	return &ResolvedType{Container: ContainerSet, Item: item}
}

// Multiple returns a resolved union wrapping item.
func Multiple(item *ResolvedType) *ResolvedType {
	return &ResolvedType{Container: ContainerMultiple, Item: item}
}
