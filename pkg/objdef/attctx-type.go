/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import "fmt"

// Kind of attribute context node
type AttributeContextType uint8

const (
	AttributeContextType_Entity AttributeContextType = iota
	AttributeContextType_EntityReferenceExtends
	AttributeContextType_AttributeDefinition
	AttributeContextType_AttributeGroup
	AttributeContextType_GeneratedSet
	AttributeContextType_GeneratedRound
	AttributeContextType_AddedAttributeIdentity
	AttributeContextType_Projection
	AttributeContextType_Source
	AttributeContextType_Operations
	AttributeContextType_OperationReplaceAsForeignKey
	AttributeContextType_OperationAddTypeAttribute
	AttributeContextType_OperationExcludeAttributes
	AttributeContextType_OperationIncludeAttributes
	AttributeContextType_OperationRenameAttributes

	AttributeContextType_Count
)

var attributeContextTypeNames = [AttributeContextType_Count]string{
	AttributeContextType_Entity:                       "entity",
	AttributeContextType_EntityReferenceExtends:       "entityReferenceExtends",
	AttributeContextType_AttributeDefinition:          "attributeDefinition",
	AttributeContextType_AttributeGroup:               "attributeGroup",
	AttributeContextType_GeneratedSet:                 "generatedSet",
	AttributeContextType_GeneratedRound:               "generatedRound",
	AttributeContextType_AddedAttributeIdentity:       "addedAttributeIdentity",
	AttributeContextType_Projection:                   "projection",
	AttributeContextType_Source:                       "source",
	AttributeContextType_Operations:                   "operations",
	AttributeContextType_OperationReplaceAsForeignKey: "operationReplaceAsForeignKey",
	AttributeContextType_OperationAddTypeAttribute:    "operationAddTypeAttribute",
	AttributeContextType_OperationExcludeAttributes:   "operationExcludeAttributes",
	AttributeContextType_OperationIncludeAttributes:   "operationIncludeAttributes",
	AttributeContextType_OperationRenameAttributes:    "operationRenameAttributes",
}

func (t AttributeContextType) String() string {
	if t < AttributeContextType_Count {
		return attributeContextTypeNames[t]
	}
	return fmt.Sprintf("AttributeContextType(%d)", t)
}

// Projection operation kind
type OperationKind uint8

const (
	OperationKind_Null OperationKind = iota
	OperationKind_ReplaceAsForeignKey
	OperationKind_AddTypeAttribute
	OperationKind_ExcludeAttributes
	OperationKind_IncludeAttributes
	OperationKind_RenameAttributes

	OperationKind_Count
)

var operationKindNames = [OperationKind_Count]string{
	OperationKind_Null:                "null",
	OperationKind_ReplaceAsForeignKey: "replaceAsForeignKey",
	OperationKind_AddTypeAttribute:    "addTypeAttribute",
	OperationKind_ExcludeAttributes:   "excludeAttributes",
	OperationKind_IncludeAttributes:   "includeAttributes",
	OperationKind_RenameAttributes:    "renameAttributes",
}

func (k OperationKind) String() string {
	if k < OperationKind_Count {
		return operationKindNames[k]
	}
	return fmt.Sprintf("OperationKind(%d)", k)
}

// Returns operation kind by its name
func OperationKindByName(name string) (OperationKind, bool) {
	for k := OperationKind_ReplaceAsForeignKey; k < OperationKind_Count; k++ {
		if operationKindNames[k] == name {
			return k, true
		}
	}
	return OperationKind_Null, false
}

// Returns attribute context type for the operation node
func (k OperationKind) ContextType() AttributeContextType {
	switch k {
	case OperationKind_ReplaceAsForeignKey:
		return AttributeContextType_OperationReplaceAsForeignKey
	case OperationKind_AddTypeAttribute:
		return AttributeContextType_OperationAddTypeAttribute
	case OperationKind_ExcludeAttributes:
		return AttributeContextType_OperationExcludeAttributes
	case OperationKind_IncludeAttributes:
		return AttributeContextType_OperationIncludeAttributes
	}
	return AttributeContextType_OperationRenameAttributes
}

// Document indexing state
type IndexState uint8

const (
	IndexState_NotIndexed IndexState = iota
	IndexState_IntegrityChecked
	IndexState_DeclarationsIndexed
	IndexState_ReferencesResolved
	IndexState_TraitArgumentsResolved
	IndexState_Finished

	IndexState_Count
)

var indexStateNames = [IndexState_Count]string{
	"NotIndexed", "IntegrityChecked", "DeclarationsIndexed", "ReferencesResolved", "TraitArgumentsResolved", "Finished",
}

func (s IndexState) String() string {
	if s < IndexState_Count {
		return indexStateNames[s]
	}
	return fmt.Sprintf("IndexState(%d)", s)
}
