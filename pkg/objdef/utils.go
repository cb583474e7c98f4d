/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Returns s with the first letter in upper case, the rest is kept
func Capitalize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// Returns last segment of slash separated path
func LastSegment(path string) string {
	if i := strings.LastIndex(path, pathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Returns attribute promise for the attribute name
func AttributePromise(attribute string) string {
	return AttributePromisePrefix + attribute + attributePromiseSuffix
}

// Returns attribute name of attribute promise
func ParseAttributePromise(s string) (attribute string, ok bool) {
	if strings.HasPrefix(s, AttributePromisePrefix) && strings.HasSuffix(s, attributePromiseSuffix) {
		return s[len(AttributePromisePrefix) : len(s)-len(attributePromiseSuffix)], true
	}
	return "", false
}

// Returns true if name is one of intrinsic base data types
func IsBaseType(name string) bool {
	switch name {
	case BaseType_Object, BaseType_Entity, BaseType_Attribute, BaseType_DataType,
		BaseType_Purpose, BaseType_Trait, BaseType_AttributeGroup:
		return true
	}
	return false
}

// Returns true if object of found kind is acceptable value for parameter derived from base type
func BaseTypeAccepts(base string, found ObjectType) bool {
	switch base {
	case BaseType_Object:
		return true
	case BaseType_Entity:
		return ObjectType_EntityRef.Accepts(found)
	case BaseType_Attribute:
		return ObjectType_AttributeRef.Accepts(found)
	case BaseType_DataType:
		return ObjectType_DataTypeRef.Accepts(found)
	case BaseType_Purpose:
		return ObjectType_PurposeRef.Accepts(found)
	case BaseType_Trait:
		return ObjectType_TraitRef.Accepts(found)
	case BaseType_AttributeGroup:
		return ObjectType_AttributeGroupRef.Accepts(found)
	}
	return false
}

// Returns the identity-relevant part of the identifying attribute value:
// last path segment, promise unwrapped
func IdentifyingAttributeName(v RefValue) string {
	var s string
	switch v.Kind() {
	case RefValueKind_Object:
		s = v.Object().DeclaredPath()
		if s == "" {
			s = v.Object().Name()
		}
	default:
		s = v.Text()
	}
	if a, ok := ParseAttributePromise(s); ok {
		s = a
	}
	return LastSegment(s)
}
