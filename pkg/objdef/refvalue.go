/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import "fmt"

// Kind of reference value
type RefValueKind uint8

const (
	RefValueKind_Null RefValueKind = iota
	// symbolic name to be resolved
	RefValueKind_Name
	// inline or already resolved object
	RefValueKind_Object
	// constant, e.g. argument literal
	RefValueKind_Constant
)

// Value of reference or argument: symbol name, object or constant
type RefValue struct {
	kind     RefValueKind
	name     string
	obj      IObject
	constant string
}

func NameValue(name string) RefValue {
	return RefValue{kind: RefValueKind_Name, name: name}
}

func ObjectValue(obj IObject) RefValue {
	if obj == nil {
		return RefValue{}
	}
	return RefValue{kind: RefValueKind_Object, obj: obj}
}

func ConstantValue(c string) RefValue {
	return RefValue{kind: RefValueKind_Constant, constant: c}
}

func (v RefValue) Kind() RefValueKind {
	return v.kind
}

func (v RefValue) IsEmpty() bool {
	switch v.kind {
	case RefValueKind_Name:
		return v.name == ""
	case RefValueKind_Object:
		return v.obj == nil
	case RefValueKind_Constant:
		return false
	}
	return true
}

// Returns symbol name. Empty for other kinds
func (v RefValue) Name() string {
	return v.name
}

// Returns object. Nil for other kinds
func (v RefValue) Object() IObject {
	return v.obj
}

// Returns constant. Empty for other kinds
func (v RefValue) Constant() string {
	return v.constant
}

// Returns symbol name or constant text. Empty for objects
func (v RefValue) Text() string {
	switch v.kind {
	case RefValueKind_Name:
		return v.name
	case RefValueKind_Constant:
		return v.constant
	}
	return ""
}

func (v RefValue) String() string {
	switch v.kind {
	case RefValueKind_Name:
		return v.name
	case RefValueKind_Object:
		return fmt.Sprintf("%s %s", v.obj.ObjectType(), v.obj.Name())
	case RefValueKind_Constant:
		return fmt.Sprintf("%q", v.constant)
	}
	return "null"
}
