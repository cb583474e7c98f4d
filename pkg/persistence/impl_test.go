/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/schemacorpus/pkg/objdef"
)

const invoiceYAML = `
imports:
  - corpusPath: /customers/Customer.cdm.yaml
  - corpusPath: /foundations.cdm.yaml
    moniker: base
definitions:
  - entity: Invoice
    extends: base/CdmEntity
    exhibitsTraits:
      - is.CDM.entityVersion
      - trait: means.measurement
        arguments:
          - "2"
          - name: unit
            value: kg
    attributes:
      - name: number
        dataType: string
        purpose: hasA
        appliedTraits: [is.required]
      - name: customer
        entity: Customer
      - name: payer
        isPolymorphicSource: true
        entity:
          source: Party
          operations:
            - replaceAsForeignKey:
                reference: id
                replaceWith: {name: payerId, dataType: entityId}
            - excludeAttributes: [secret]
            - renameAttributes: {format: "{a}{M}", applyTo: [code]}
      - group: Audit
  - trait: means.measurement
    extends: means
    parameters:
      - name: scale
        dataType: integer
        required: true
      - name: unit
        dataType: string
        default: m
  - dataType: entityId
    extends: string
  - purpose: hasA
  - attributeGroup: Audit
    members:
      - name: createdOn
        dataType: dateTime
  - constantEntity: Currencies
    shape: CurrencyShape
    values:
      - [EUR, Euro]
`

func TestLoad(t *testing.T) {
	require := require.New(t)
	p := Provide()

	doc, err := p.Load("Invoice.cdm.yaml", []byte(invoiceYAML))
	require.NoError(err)
	require.Equal("Invoice.cdm.yaml", doc.Name())

	require.Len(doc.Imports, 2)
	require.Equal("/customers/Customer.cdm.yaml", doc.Imports[0].CorpusPath)
	require.Empty(doc.Imports[0].Moniker)
	require.Equal("base", doc.Imports[1].Moniker)

	require.Len(doc.Definitions, 6)

	t.Run("entity", func(t *testing.T) {
		e, ok := doc.Definition("Invoice").(*objdef.EntityDef)
		require.True(ok)
		require.Equal("base/CdmEntity", e.ExtendsEntity.Name())
		require.Len(e.ExhibitsTraits, 2)
		require.Equal("is.CDM.entityVersion", e.ExhibitsTraits[0].Name())

		measure := e.ExhibitsTraits[1]
		require.Equal("means.measurement", measure.Name())
		require.Len(measure.Arguments, 2)
		require.Empty(measure.Arguments[0].ArgName)
		require.Equal(objdef.ConstantValue("2"), measure.Arguments[0].Value)
		require.Equal("unit", measure.Arguments[1].ArgName)
		require.Equal("kg", measure.Arguments[1].Value.Constant())

		require.Len(e.Attributes, 4)

		number := e.Attributes[0].(*objdef.TypeAttribute)
		require.Equal("string", number.DataType.Name())
		require.Equal("hasA", number.Purpose.Name())
		require.Equal("is.required", number.AppliedTraits[0].Name())

		customer := e.Attributes[1].(*objdef.EntityAttribute)
		require.Equal("Customer", customer.Entity.Name())
		require.False(customer.Entity.IsInline())

		payer := e.Attributes[2].(*objdef.EntityAttribute)
		require.True(payer.IsPolymorphicSource)
		require.True(payer.Entity.IsInline())
		proj := payer.Entity.Value.Object().(*objdef.ProjectionDef)
		require.Equal("Party", proj.Source.Name())
		require.Len(proj.Operations, 3)
		require.Equal(objdef.OperationKind_ReplaceAsForeignKey, proj.Operations[0].Kind)
		require.Equal("id", proj.Operations[0].Reference)
		require.Equal("payerId", proj.Operations[0].ReplaceWith.Name())
		require.Equal([]string{"secret"}, proj.Operations[1].Names)
		require.Equal("{a}{M}", proj.Operations[2].RenameFormat)

		group := e.Attributes[3].(*objdef.Reference)
		require.Equal(objdef.ObjectType_AttributeGroupRef, group.ObjectType())
		require.Equal("Audit", group.Name())
	})

	t.Run("trait", func(t *testing.T) {
		tr := doc.Definition("means.measurement").(*objdef.TraitDef)
		require.Equal("means", tr.ExtendsTrait.Name())
		require.Len(tr.Parameters, 2)
		require.True(tr.Parameters[0].Required)
		require.Equal("integer", tr.Parameters[0].DataType.Name())
		require.Equal("m", tr.Parameters[1].DefaultValue.Constant())
	})

	t.Run("other definitions", func(t *testing.T) {
		dt := doc.Definition("entityId").(*objdef.DataTypeDef)
		require.Equal("string", dt.ExtendsDataType.Name())

		require.IsType(&objdef.PurposeDef{}, doc.Definition("hasA"))

		g := doc.Definition("Audit").(*objdef.AttributeGroupDef)
		require.Len(g.Members, 1)
		require.Equal("createdOn", g.Members[0].Name())

		c := doc.Definition("Currencies").(*objdef.ConstantEntityDef)
		require.Equal("CurrencyShape", c.EntityShape.Name())
		require.Equal([][]string{{"EUR", "Euro"}}, c.Values)
	})
}

func TestLoad_InlineConstantArgument(t *testing.T) {
	require := require.New(t)

	doc, err := Provide().Load("a.cdm.yaml", []byte(`
definitions:
  - entity: A
    attributes:
      - name: ref
        dataType: string
        appliedTraits:
          - trait: is.linkedEntity.identifier
            arguments:
              - shape: entityGroupSet
                values: [["/B.cdm.yaml/B", "id"]]
`))
	require.NoError(err)

	a := doc.Definition("A").(*objdef.EntityDef)
	tr := a.Attributes[0].(*objdef.TypeAttribute).AppliedTraits[0]
	require.Len(tr.Arguments, 1)
	ce, ok := tr.Arguments[0].Value.Object().(*objdef.ConstantEntityDef)
	require.True(ok)
	require.Equal("entityGroupSet", ce.EntityShape.Name())
	require.Equal([][]string{{"/B.cdm.yaml/B", "id"}}, ce.Values)
}

func TestLoad_Errors(t *testing.T) {
	p := Provide()

	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "definitions: [\n"},
		{"unknown field", "unknown: 1\n"},
		{"import without path", "imports:\n  - moniker: a\n"},
		{"ambiguous definition", "definitions:\n  - entity: A\n    trait: B\n"},
		{"empty definition", "definitions:\n  - extends: A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := p.Load("bad.cdm.yaml", []byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidContentError)
			require.Nil(t, doc)
		})
	}
}

func TestIsDocumentName(t *testing.T) {
	require := require.New(t)
	p := Provide()

	require.True(p.IsDocumentName("Invoice.cdm.yaml"))
	require.True(p.IsDocumentName("Invoice.cdm.yml"))
	require.False(p.IsDocumentName(".cdm.yaml"))
	require.False(p.IsDocumentName("Invoice.yaml"))
	require.False(p.IsDocumentName("Invoice"))
}
