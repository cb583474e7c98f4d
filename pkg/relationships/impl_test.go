/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package relationships

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/schemacorpus/pkg/objdef"
)

type testResolver map[string]objdef.IObject

func (r testResolver) FetchDefinition(ref *objdef.Reference) objdef.IObject {
	if ref.IsInline() {
		return ref.Value.Object()
	}
	return r[ref.Name()]
}

func (r testResolver) AbsolutePath(path, relativeTo string) string {
	if strings.Contains(path, ":") {
		return path
	}
	return relativeTo + strings.TrimPrefix(path, "/")
}

func linkedTo(rows ...[]string) *objdef.ResolvedTraitSet {
	ce := objdef.NewConstantEntity("", "entityGroupSet", rows...)
	return objdef.NewResolvedTraitSet(
		objdef.NewResolvedTrait(objdef.TraitName_LinkedEntityIdentifier, nil).Set("entityReferences", objdef.ObjectValue(ce)),
	)
}

func identifiedBy(att string) *objdef.ResolvedTraitSet {
	return objdef.NewResolvedTraitSet(
		objdef.NewResolvedTrait(objdef.TraitName_IdentifiedBy, nil).Set("attribute", objdef.ConstantValue(att)),
	)
}

// Builds attribute, entity node and generated foreign key under parent
func foreignKey(parent *objdef.AttributeContext, att, entity, fkName string, rows ...[]string) *objdef.AttributeContext {
	attCtx := objdef.NewAttributeContext(parent, objdef.AttributeContextType_AttributeDefinition, att, nil)
	ent := objdef.NewAttributeContext(attCtx, objdef.AttributeContextType_Entity, entity, objdef.NewEntityRef(entity))
	ent.ExhibitsTraits = identifiedBy(entity + "/hasAttributes/id")
	gen := objdef.NewAttributeContext(attCtx, objdef.AttributeContextType_GeneratedSet, objdef.ContextName_GeneratedSet, nil)
	round := objdef.NewAttributeContext(gen, objdef.AttributeContextType_GeneratedRound, objdef.ContextName_GeneratedRound, nil)
	fk := objdef.NewAttributeContext(round, objdef.AttributeContextType_AddedAttributeIdentity, objdef.ContextName_ForeignKey, nil)
	fk.Attributes = append(fk.Attributes, &objdef.ResolvedAttribute{Name: fkName, Traits: linkedTo(rows...), AttCtx: fk})
	return attCtx
}

func newInvoice(attributes ...objdef.IObject) *objdef.EntityDef {
	invoice := objdef.NewEntity("Invoice")
	invoice.Attributes = attributes
	doc := objdef.NewDocument("Invoice.cdm.yaml")
	doc.Folder = objdef.NewFolder("local", "/sales")
	doc.AddDefinition(invoice)
	doc.Bind(nil)
	return invoice
}

func TestExtract_EntityReference(t *testing.T) {
	require := require.New(t)

	invoice := newInvoice()
	resolver := testResolver{
		"Customer": objdef.NewEntity("Customer"),
		"Product":  objdef.NewEntity("Product"),
	}

	root := objdef.NewAttributeContext(nil, objdef.AttributeContextType_Entity, "Invoice", invoice)
	objdef.NewAttributeContext(root, objdef.AttributeContextType_AttributeDefinition, "number", nil)
	foreignKey(root, "customer", "Customer", "customerId", []string{"local:/crm/Customer.cdm.yaml/Customer", "id"})
	foreignKey(root, "product", "Product", "productCode", []string{"Product.cdm.yaml/Product", "code", "soldProduct"})

	rels := Extract(resolver, &objdef.ResolvedEntity{Entity: invoice, AttCtx: root})
	require.Equal([]Relationship{
		{
			FromEntity:    "local:/sales/Invoice.cdm.yaml/Invoice",
			FromAttribute: "customerId",
			ToEntity:      "local:/crm/Customer.cdm.yaml/Customer",
			ToAttribute:   "id",
		},
		{
			FromEntity:    "local:/sales/Invoice.cdm.yaml/Invoice",
			FromAttribute: "productCode",
			ToEntity:      "local:/sales/Product.cdm.yaml/Product",
			ToAttribute:   "code",
			Name:          "soldProduct",
		},
	}, rels)
	require.Equal("(local:/sales/Invoice.cdm.yaml/Invoice, customerId) → (local:/crm/Customer.cdm.yaml/Customer, id)", rels[0].String())

	t.Run("duplicate edges are collapsed", func(t *testing.T) {
		foreignKey(root, "customer2", "Customer", "customerId", []string{"local:/crm/Customer.cdm.yaml/Customer", "id"})
		require.Len(Extract(resolver, &objdef.ResolvedEntity{Entity: invoice, AttCtx: root}), 2)
	})
}

func TestExtract_NoIdentifyingAttribute(t *testing.T) {
	require := require.New(t)

	invoice := newInvoice()
	resolver := testResolver{"Customer": objdef.NewEntity("Customer")}

	root := objdef.NewAttributeContext(nil, objdef.AttributeContextType_Entity, "Invoice", invoice)
	att := foreignKey(root, "customer", "Customer", "customerId", []string{"local:/Customer.cdm.yaml/Customer", "id"})
	att.Contents[0].ExhibitsTraits = nil

	require.Empty(Extract(resolver, &objdef.ResolvedEntity{Entity: invoice, AttCtx: root}))
}

func TestExtract_UnresolvedEntity(t *testing.T) {
	invoice := newInvoice()
	root := objdef.NewAttributeContext(nil, objdef.AttributeContextType_Entity, "Invoice", invoice)
	foreignKey(root, "customer", "Customer", "customerId", []string{"local:/Customer.cdm.yaml/Customer", "id"})

	require.Empty(t, Extract(testResolver{}, &objdef.ResolvedEntity{Entity: invoice, AttCtx: root}))
}

func TestExtract_Projection(t *testing.T) {
	const (
		person = "local:/Person.cdm.yaml/Person"
		org    = "local:/Organization.cdm.yaml/Organization"
	)

	for _, polymorphic := range []bool{true, false} {
		name := "plain"
		if polymorphic {
			name = "polymorphic"
		}
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			proj := objdef.NewProjection(objdef.NewEntityRef("Party"))
			payer := &objdef.EntityAttribute{
				AttributeName:       "payer",
				Entity:              objdef.NewReference(objdef.ObjectType_EntityRef, objdef.ObjectValue(proj)),
				IsPolymorphicSource: polymorphic,
			}
			invoice := newInvoice(payer)
			resolver := testResolver{
				"Party":        objdef.NewEntity("Party"),
				"Person":       objdef.NewEntity("Person"),
				"Organization": objdef.NewEntity("Organization"),
			}

			root := objdef.NewAttributeContext(nil, objdef.AttributeContextType_Entity, "Invoice", invoice)
			attCtx := objdef.NewAttributeContext(root, objdef.AttributeContextType_AttributeDefinition, "payer", payer)
			ent := objdef.NewAttributeContext(attCtx, objdef.AttributeContextType_Entity, "payer", payer.Entity)
			projCtx := objdef.NewAttributeContext(ent, objdef.AttributeContextType_Projection, objdef.ContextName_Projection, proj)
			src := objdef.NewAttributeContext(projCtx, objdef.AttributeContextType_Source, objdef.ContextName_Source, nil)
			party := objdef.NewAttributeContext(src, objdef.AttributeContextType_Entity, "Party", proj.Source)
			party.ExhibitsTraits = identifiedBy("Party/hasAttributes/id")
			foreignKey(party, "person", "Person", "personId", []string{person, "id"})
			foreignKey(party, "organization", "Organization", "organizationId", []string{org, "id"})

			gen := objdef.NewAttributeContext(attCtx, objdef.AttributeContextType_GeneratedSet, objdef.ContextName_GeneratedSet, nil)
			round := objdef.NewAttributeContext(gen, objdef.AttributeContextType_GeneratedRound, objdef.ContextName_GeneratedRound, nil)
			round.Attributes = append(round.Attributes, &objdef.ResolvedAttribute{
				Name:   "payerId",
				Traits: linkedTo([]string{person, "id"}, []string{org, "id"}),
				AttCtx: round,
			})

			rels := Extract(resolver, &objdef.ResolvedEntity{Entity: invoice, AttCtx: root})

			from := "local:/sales/Invoice.cdm.yaml/Invoice"
			expected := []Relationship{
				{FromEntity: from, FromAttribute: "payerId", ToEntity: person, ToAttribute: "id"},
				{FromEntity: from, FromAttribute: "payerId", ToEntity: org, ToAttribute: "id"},
			}
			// foreign keys of the source entity are not relationships of the invoice
			require.Equal(expected, rels)
		})
	}
}

func TestInvert(t *testing.T) {
	require := require.New(t)

	out := []Relationship{
		{FromEntity: "A", FromAttribute: "cId", ToEntity: "C", ToAttribute: "id"},
		{FromEntity: "B", FromAttribute: "cId", ToEntity: "C", ToAttribute: "id"},
		{FromEntity: "B", FromAttribute: "dId", ToEntity: "D", ToAttribute: "id"},
	}
	in := Invert(out)
	require.Len(in, 2)
	require.Equal(out[:2], in["C"])
	require.Equal(out[2:], in["D"])
}

func TestExtract_Empty(t *testing.T) {
	require.Nil(t, Extract(testResolver{}, nil))
	require.Nil(t, Extract(testResolver{}, &objdef.ResolvedEntity{}))
}
