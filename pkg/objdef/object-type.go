/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import "fmt"

// Object kind
type ObjectType uint8

const (
	ObjectType_Null ObjectType = iota
	ObjectType_Document
	ObjectType_EntityDef
	ObjectType_EntityRef
	ObjectType_TypeAttributeDef
	ObjectType_EntityAttributeDef
	ObjectType_AttributeRef
	ObjectType_AttributeGroupDef
	ObjectType_AttributeGroupRef
	ObjectType_TraitDef
	ObjectType_TraitRef
	ObjectType_ParameterDef
	ObjectType_ArgumentDef
	ObjectType_DataTypeDef
	ObjectType_DataTypeRef
	ObjectType_PurposeDef
	ObjectType_PurposeRef
	ObjectType_ConstantEntityDef
	ObjectType_ProjectionDef
	ObjectType_OperationDef

	ObjectType_FakeLast
)

var objectTypeNames = [ObjectType_FakeLast]string{
	ObjectType_Null:               "null",
	ObjectType_Document:           "document",
	ObjectType_EntityDef:          "entity",
	ObjectType_EntityRef:          "entityReference",
	ObjectType_TypeAttributeDef:   "typeAttribute",
	ObjectType_EntityAttributeDef: "entityAttribute",
	ObjectType_AttributeRef:       "attributeReference",
	ObjectType_AttributeGroupDef:  "attributeGroup",
	ObjectType_AttributeGroupRef:  "attributeGroupReference",
	ObjectType_TraitDef:           "trait",
	ObjectType_TraitRef:           "traitReference",
	ObjectType_ParameterDef:       "parameter",
	ObjectType_ArgumentDef:        "argument",
	ObjectType_DataTypeDef:        "dataType",
	ObjectType_DataTypeRef:        "dataTypeReference",
	ObjectType_PurposeDef:         "purpose",
	ObjectType_PurposeRef:         "purposeReference",
	ObjectType_ConstantEntityDef:  "constantEntity",
	ObjectType_ProjectionDef:      "projection",
	ObjectType_OperationDef:       "operation",
}

func (t ObjectType) String() string {
	if t < ObjectType_FakeLast {
		return objectTypeNames[t]
	}
	return fmt.Sprintf("ObjectType(%d)", t)
}

// Returns true if t is one of reference kinds
func (t ObjectType) IsReference() bool {
	switch t {
	case ObjectType_EntityRef, ObjectType_AttributeRef, ObjectType_AttributeGroupRef,
		ObjectType_TraitRef, ObjectType_DataTypeRef, ObjectType_PurposeRef:
		return true
	}
	return false
}

// Returns true if objects of kind t may legally repeat at the same declared path
func (t ObjectType) MayRepeat() bool {
	switch t {
	case ObjectType_EntityRef, ObjectType_TraitRef, ObjectType_DataTypeRef,
		ObjectType_PurposeRef, ObjectType_AttributeGroupRef, ObjectType_ConstantEntityDef:
		return true
	}
	return false
}

// Returns true if object of kind found satisfies expectation t.
//
// Null expectation accepts everything. Reference expectation accepts the definition
// kinds the reference may point to, definition expectation accepts only itself
func (t ObjectType) Accepts(found ObjectType) bool {
	if t == ObjectType_Null || t == found {
		return true
	}
	switch t {
	case ObjectType_EntityRef:
		return found == ObjectType_EntityDef || found == ObjectType_ConstantEntityDef || found == ObjectType_ProjectionDef
	case ObjectType_AttributeRef:
		return found == ObjectType_TypeAttributeDef || found == ObjectType_EntityAttributeDef
	case ObjectType_AttributeGroupRef:
		return found == ObjectType_AttributeGroupDef
	case ObjectType_TraitRef:
		return found == ObjectType_TraitDef
	case ObjectType_DataTypeRef:
		return found == ObjectType_DataTypeDef
	case ObjectType_PurposeRef:
		return found == ObjectType_PurposeDef
	}
	return false
}
