/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

// Provenance node of resolved attributes.
//
// Tree is built once by entity resolution and is read-only afterward
type AttributeContext struct {
	ContextName string
	Type        AttributeContextType
	Parent      *AttributeContext
	// Object the node represents: entity reference, attribute, projection, operation
	Definition IObject
	Contents   []*AttributeContext
	// Attributes lodged at this node
	Attributes []*ResolvedAttribute
	// Traits of the entity for entity nodes
	ExhibitsTraits *ResolvedTraitSet
}

// Creates node and adds it to parent contents
func NewAttributeContext(parent *AttributeContext, typ AttributeContextType, name string, def IObject) *AttributeContext {
	c := &AttributeContext{ContextName: name, Type: typ, Parent: parent, Definition: def}
	if parent != nil {
		parent.Contents = append(parent.Contents, c)
	}
	return c
}

// Returns direct child by name
func (c *AttributeContext) Child(name string) *AttributeContext {
	for _, cc := range c.Contents {
		if cc.ContextName == name {
			return cc
		}
	}
	return nil
}

// Returns path of the node from the root, e.g. "Invoice/customer/Customer"
func (c *AttributeContext) AtPath() string {
	if c.Parent == nil {
		return c.ContextName
	}
	return c.Parent.AtPath() + pathSeparator + c.ContextName
}

// Returns definition as reference. Nil if definition is not a reference of specified kind
func (c *AttributeContext) Reference(kind ObjectType) *Reference {
	if ref, ok := c.Definition.(*Reference); ok && ref.ObjectType() == kind {
		return ref
	}
	return nil
}
