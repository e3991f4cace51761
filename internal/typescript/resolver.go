// SPDX-License-Identifier: Apache-2.0

// Package typescript generates TypeScript resource provider projects from
// resolved schema models.
package typescript

import (
	"fmt"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/jsonutils"
)

// primitiveTypes maps schema primitive kinds to TypeScript type names. The
// integer kind maps to the support library's branded "integer" alias, not to
// "number"; untyped schema nodes map to "object".
var primitiveTypes = map[string]string{
	"string":            "string",
	"integer":           "integer",
	"boolean":           "boolean",
	"number":            "number",
	jsonutils.Undefined: "object",
}

// primitiveWrappers maps translated primitive names to the constructible
// wrapper classes used when rebuilding values at runtime.
var primitiveWrappers = map[string]string{
	"string":  "String",
	"integer": "Integer",
	"boolean": "Boolean",
	"number":  "Number",
	"object":  "Object",
}

// UnknownContainerError indicates a resolved type carried a container tag
// outside the known set. This is a contract violation by the schema resolver,
// not an expected runtime condition.
type UnknownContainerError struct {
	Container jsonutils.ContainerType
}

func (e *UnknownContainerError) Error() string {
	return fmt.Sprintf("unknown container type %s", e.Container)
}

// UnknownPrimitiveError indicates a primitive kind missing from the type
// table; it means the table and the schema resolver's vocabulary have
// drifted apart.
type UnknownPrimitiveError struct {
	Type string
}

func (e *UnknownPrimitiveError) Error() string {
	return fmt.Sprintf("unknown primitive type %q", e.Type)
}

// TranslateType maps a resolved type to its TypeScript type expression.
// Unions collapse to "object"; the member types are not preserved.
func TranslateType(t *jsonutils.ResolvedType) (string, error) {
	switch t.Container {
	case jsonutils.ContainerModel:
		return t.Type, nil
	case jsonutils.ContainerPrimitive:
		name, ok := primitiveTypes[t.Type]
		if !ok {
			return "", &UnknownPrimitiveError{Type: t.Type}
		}
		return name, nil
	case jsonutils.ContainerMultiple:
		return "object", nil
	case jsonutils.ContainerDict, jsonutils.ContainerList, jsonutils.ContainerSet:
		item, err := TranslateType(t.Item)
		if err != nil {
			return "", err
		}
		switch t.Container {
		case jsonutils.ContainerDict:
			return fmt.Sprintf("Map<%s, %s>", primitiveTypes["string"], item), nil
		case jsonutils.ContainerList:
			return fmt.Sprintf("Array<%s>", item), nil
		default:
			return fmt.Sprintf("Set<%s>", item), nil
		}
	}

	return "", &UnknownContainerError{Container: t.Container}
}

// ContainsModel reports whether t is a model reference, recursing through
// lists only. A set or map of models reports false; generated code relies on
// this exact classification.
func ContainsModel(t *jsonutils.ResolvedType) bool {
	if t.Container == jsonutils.ContainerList {
		return ContainsModel(t.Item)
	}
	return t.Container == jsonutils.ContainerModel
}

// InnerType is the unwound view of a resolved type: the innermost scalar
// type plus the ordered container classes wrapping it, outermost first. It is
// used where container values must be constructed rather than annotated.
type InnerType struct {
	Type        string
	WrapperType string
	Primitive   bool
	Classes     []string
}

// GetInnerType decomposes a resolved type into its inner scalar type and
// container class chain.
func GetInnerType(t *jsonutils.ResolvedType) (*InnerType, error) {
	inner := &InnerType{}
	typ, err := inner.resolve(t)
	if err != nil {
		return nil, err
	}
	inner.Type = typ
	inner.WrapperType = typ
	if inner.Primitive {
		inner.WrapperType = primitiveWrappers[typ]
	}
	return inner, nil
}

func (i *InnerType) resolve(t *jsonutils.ResolvedType) (string, error) {
	switch t.Container {
	case jsonutils.ContainerPrimitive:
		i.Primitive = true
		name, ok := primitiveTypes[t.Type]
		if !ok {
			return "", &UnknownPrimitiveError{Type: t.Type}
		}
		return name, nil
	case jsonutils.ContainerMultiple:
		// Same union collapse as TranslateType; "object" is the terminal here.
		i.Primitive = true
		return "object", nil
	case jsonutils.ContainerModel:
		return t.Type, nil
	case jsonutils.ContainerDict:
		i.Classes = append(i.Classes, "Map")
	case jsonutils.ContainerList:
		i.Classes = append(i.Classes, "Array")
	case jsonutils.ContainerSet:
		i.Classes = append(i.Classes, "Set")
	default:
		return "", &UnknownContainerError{Container: t.Container}
	}

	return i.resolve(t.Item)
}
