/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvedTraitSet(t *testing.T) {
	require := require.New(t)

	idBy := NewTrait("is.identifiedBy")
	s := NewResolvedTraitSet(
		NewResolvedTrait("is.required", nil),
		NewResolvedTrait("is.identifiedBy", idBy).Set("attribute", NameValue("Customer/hasAttributes/id")),
	)
	require.Equal(2, s.Len())
	require.True(s.Has("is.required"))
	require.Nil(s.Find("is.unknown"))
	require.Equal(idBy, s.Find("is.identifiedBy").Trait)

	t.Run("merge overrides set values only", func(t *testing.T) {
		s.Merge(NewResolvedTrait("is.identifiedBy", nil).Set("attribute", RefValue{}).Set("other", ConstantValue("x")))
		tr := s.Find("is.identifiedBy")
		require.Equal("Customer/hasAttributes/id", tr.ValueOf("attribute").Name())
		require.Equal("x", tr.ValueOf("other").Constant())
		require.Equal(idBy, tr.Trait)

		s.Merge(NewResolvedTrait("is.identifiedBy", nil).Set("attribute", NameValue("Customer/hasAttributes/code")))
		require.Equal("Customer/hasAttributes/code", s.Find("is.identifiedBy").First().Name())
		require.Equal(2, s.Len())
	})

	t.Run("copy is deep", func(t *testing.T) {
		c := s.Copy()
		c.Find("is.identifiedBy").Set("attribute", NameValue("changed"))
		require.Equal("Customer/hasAttributes/code", s.Find("is.identifiedBy").ValueOf("attribute").Name())
	})

	t.Run("nil set", func(t *testing.T) {
		var n *ResolvedTraitSet
		require.Nil(n.Find("x"))
		require.Zero(n.Len())
		require.Empty(n.All())
		require.Zero(n.Copy().Len())
	})
}

func TestResolvedEntity(t *testing.T) {
	require := require.New(t)

	rows := NewConstantEntity("", "", []string{"local:/Customer.cdm.yaml/Customer", "id"})
	fk := &ResolvedAttribute{
		Name: "customerId",
		Traits: NewResolvedTraitSet(
			NewResolvedTrait(TraitName_LinkedEntityIdentifier, nil).Set("entityReferences", ObjectValue(rows)),
		),
	}
	e := &ResolvedEntity{}
	e.AddAttribute(&ResolvedAttribute{Name: "number"})
	e.AddAttribute(fk)
	e.AddAttribute(&ResolvedAttribute{Name: "number", Target: NewTypeAttribute("number", "integer")})

	require.Len(e.Attributes, 2)
	require.Equal("number", e.Attributes[0].Name)
	require.NotNil(e.Attributes[0].Target)
	require.Equal([][]string{{"local:/Customer.cdm.yaml/Customer", "id"}}, e.Attribute("customerId").LinkedEntityRows())
	require.Nil(e.Attribute("number").LinkedEntityRows())
	require.Nil(e.Attribute("absent"))

	c := fk.Copy()
	c.Name = "renamed"
	require.Equal("customerId", fk.Name)
}

func TestAttributeContext(t *testing.T) {
	require := require.New(t)

	ref := NewEntityRef("Customer")
	root := NewAttributeContext(nil, AttributeContextType_Entity, "Invoice", nil)
	att := NewAttributeContext(root, AttributeContextType_AttributeDefinition, "customer", nil)
	ent := NewAttributeContext(att, AttributeContextType_Entity, "Customer", ref)

	require.Equal(att, root.Child("customer"))
	require.Nil(root.Child("absent"))
	require.Equal("Invoice/customer/Customer", ent.AtPath())
	require.Equal(ref, ent.Reference(ObjectType_EntityRef))
	require.Nil(ent.Reference(ObjectType_TraitRef))
	require.Nil(att.Reference(ObjectType_EntityRef))
}

func TestDirectives(t *testing.T) {
	require := require.New(t)

	d := NewDirectives("referenceOnly", "normalized")
	require.Equal("normalized-referenceOnly", d.Tag())
	require.True(d.Has("normalized"))

	d2 := d.With("structured")
	require.Equal("normalized-referenceOnly-structured", d2.Tag())
	require.False(d.Has("structured"))

	var empty Directives
	require.Equal("", empty.Tag())
	require.Equal("x", empty.With("x").Tag())
}

func TestObjectTypeAccepts(t *testing.T) {
	require := require.New(t)

	require.True(ObjectType_Null.Accepts(ObjectType_TraitDef))
	require.True(ObjectType_EntityRef.Accepts(ObjectType_EntityDef))
	require.True(ObjectType_EntityRef.Accepts(ObjectType_ProjectionDef))
	require.False(ObjectType_EntityRef.Accepts(ObjectType_TraitDef))
	require.True(ObjectType_AttributeRef.Accepts(ObjectType_EntityAttributeDef))
	require.True(ObjectType_TraitDef.Accepts(ObjectType_TraitDef))
	require.False(ObjectType_TraitDef.Accepts(ObjectType_DataTypeDef))

	require.True(ObjectType_TraitRef.MayRepeat())
	require.True(ObjectType_ConstantEntityDef.MayRepeat())
	require.False(ObjectType_TypeAttributeDef.MayRepeat())
	require.False(ObjectType_AttributeRef.MayRepeat())

	require.Equal("entity", ObjectType_EntityDef.String())
	require.Equal("ObjectType(200)", ObjectType(200).String())
}

func TestUtils(t *testing.T) {
	require := require.New(t)

	require.Equal("Id", Capitalize("id"))
	require.Equal("AccountNumber", Capitalize("accountNumber"))
	require.Equal("", Capitalize(""))

	require.Equal("id", LastSegment("Customer/hasAttributes/id"))
	require.Equal("id", LastSegment("id"))

	p := AttributePromise("code")
	require.Equal("this.attribute(code)", p)
	a, ok := ParseAttributePromise(p)
	require.True(ok)
	require.Equal("code", a)
	_, ok = ParseAttributePromise("code")
	require.False(ok)

	require.Equal("id", IdentifyingAttributeName(NameValue("Customer/hasAttributes/id")))
	require.Equal("code", IdentifyingAttributeName(ConstantValue(p)))

	require.True(IsBaseType("entity"))
	require.False(IsBaseType("string"))
	require.True(BaseTypeAccepts(BaseType_Entity, ObjectType_ConstantEntityDef))
	require.True(BaseTypeAccepts(BaseType_Attribute, ObjectType_TypeAttributeDef))
	require.False(BaseTypeAccepts(BaseType_Trait, ObjectType_EntityDef))
	require.True(BaseTypeAccepts(BaseType_Object, ObjectType_PurposeDef))
	require.False(BaseTypeAccepts("string", ObjectType_PurposeDef))

	k, ok := OperationKindByName("renameAttributes")
	require.True(ok)
	require.Equal(OperationKind_RenameAttributes, k)
	_, ok = OperationKindByName("null")
	require.False(ok)
}
