/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

// Declared path segments
const (
	pathSeparator        = "/"
	segExtendsEntity     = "/extendsEntity/"
	segExhibitsTraits    = "/exhibitsTraits/"
	segHasAttributes     = "/hasAttributes/"
	segPurpose           = "/purpose/"
	segDataType          = "/dataType/"
	segEntity            = "/entity/"
	segAppliedTraits     = "/appliedTraits/"
	segMembers           = "/members/"
	segExtendsTrait      = "/extendsTrait/"
	segHasParameters     = "/hasParameters/"
	segDefaultValue      = "/defaultValue/"
	segExtendsDataType   = "/extendsDataType/"
	segExtendsPurpose    = "/extendsPurpose/"
	segEntityShape       = "/entityShape/"
	segArguments         = "/arguments/"
	segSource            = "/source/"
	segOperation         = "/operation/index"
	segInline            = "/"
	segProjection        = "projection"
	segNewAttribute      = "/newAttribute/"
	segReplaceWith       = "/replaceWith/"
	segArgumentValue     = "value"
	notInDocumentPath    = "NotInDocument/"
	namespaceSeparator   = ":"
	DefaultNamespaceName = "local"
)

// Placeholder names
const (
	// Path part of objects without name, such objects are never declared
	UnspecifiedName = "(unspecified)"
	// Path part of inline reference
	InlineRefName = "(ref)"
	// Prefix of attribute promise: argument value resolved later against the owning entity attributes
	AttributePromisePrefix = "this.attribute("
	attributePromiseSuffix = ")"
)

// Well-known trait names
const (
	TraitName_IdentifiedBy             = "is.identifiedBy"
	TraitName_LinkedEntityIdentifier   = "is.linkedEntity.identifier"
	TraitName_PolymorphicSourceSupport = "is.linkedEntity.polymorphic"
)

// Well-known attribute context names
const (
	ContextName_GeneratedSet   = "_generatedAttributeSet"
	ContextName_GeneratedRound = "_generatedAttributeRound0"
	ContextName_ForeignKey     = "_foreignKey"
	ContextName_Projection     = "_projection"
	ContextName_Source         = "_source"
	ContextName_Operations     = "_operations"
)

// Intrinsic base data type names
const (
	BaseType_Object         = "cdmObject"
	BaseType_Entity         = "entity"
	BaseType_Attribute      = "attribute"
	BaseType_DataType       = "dataType"
	BaseType_Purpose        = "purpose"
	BaseType_Trait          = "trait"
	BaseType_AttributeGroup = "attributeGroup"
)
