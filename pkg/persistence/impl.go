/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

import (
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/voedger/schemacorpus/pkg/objdef"
)

func (persistence) IsDocumentName(name string) bool {
	for _, ext := range documentExtensions {
		if strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return true
		}
	}
	return false
}

func (p persistence) Load(name string, content []byte) (*objdef.Document, error) {
	var dy documentYAML
	if err := yaml.UnmarshalStrict(content, &dy); err != nil {
		return nil, ErrInvalidContent(name, "%v", err)
	}

	doc := objdef.NewDocument(name)
	for _, imp := range dy.Imports {
		if imp.CorpusPath == "" {
			return nil, ErrInvalidContent(name, "import without corpusPath")
		}
		doc.AddImport(imp.CorpusPath, imp.Moniker)
	}

	for i, d := range dy.Definitions {
		def, err := d.toObject()
		if err != nil {
			return nil, ErrInvalidContent(name, "definition #%d: %v", i, err)
		}
		doc.AddDefinition(def)
	}

	return doc, nil
}

func (d definitionYAML) toObject() (objdef.IObject, error) {
	kinds := 0
	for _, set := range []bool{d.Entity != "", d.Trait != "", d.DataType != "", d.Purpose != "", d.AttributeGroup != "", d.ConstantEntity != nil} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, errAmbiguousDefinition
	}

	switch {
	case d.Entity != "":
		e := objdef.NewEntity(d.Entity)
		if d.Extends != nil {
			e.ExtendsEntity = d.Extends.toReference()
		}
		e.ExhibitsTraits = traitRefs(d.ExhibitsTraits)
		for _, a := range d.Attributes {
			e.Attributes = append(e.Attributes, a.toObject())
		}
		return e, nil
	case d.Trait != "":
		t := objdef.NewTrait(d.Trait)
		if d.Extends != nil {
			t.Extends(d.Extends.Name)
		}
		for _, p := range d.Parameters {
			param := objdef.NewParameter(p.Name, p.DataType, p.Required)
			if p.Default != nil {
				param.DefaultValue = p.Default.toValue()
			}
			t.Parameters = append(t.Parameters, param)
		}
		return t, nil
	case d.DataType != "":
		dt := objdef.NewDataType(d.DataType, "")
		if d.Extends != nil {
			dt.ExtendsDataType = objdef.NewDataTypeRef(d.Extends.Name)
		}
		dt.ExhibitsTraits = traitRefs(d.ExhibitsTraits)
		return dt, nil
	case d.Purpose != "":
		p := objdef.NewPurpose(d.Purpose, traitRefs(d.ExhibitsTraits)...)
		if d.Extends != nil {
			p.ExtendsPurpose = objdef.NewPurposeRef(d.Extends.Name)
		}
		return p, nil
	case d.AttributeGroup != "":
		g := objdef.NewAttributeGroup(d.AttributeGroup)
		for _, m := range d.Members {
			g.Members = append(g.Members, m.toObject())
		}
		g.ExhibitsTraits = traitRefs(d.ExhibitsTraits)
		return g, nil
	}
	return objdef.NewConstantEntity(*d.ConstantEntity, d.Shape, d.Values...), nil
}

func (a attributeYAML) toObject() objdef.IObject {
	if a.Group != "" && a.Name == "" {
		return objdef.NewAttributeGroupRef(a.Group)
	}
	if a.Entity != nil {
		ea := &objdef.EntityAttribute{
			AttributeName:       a.Name,
			Entity:              a.Entity.toReference(),
			AppliedTraits:       traitRefs(a.AppliedTraits),
			IsPolymorphicSource: a.IsPolymorphicSource,
		}
		if a.Purpose != "" {
			ea.Purpose = objdef.NewPurposeRef(a.Purpose)
		}
		return ea
	}
	return a.toTypeAttribute()
}

func (a attributeYAML) toTypeAttribute() *objdef.TypeAttribute {
	ta := objdef.NewTypeAttribute(a.Name, a.DataType)
	if a.Purpose != "" {
		ta.Purpose = objdef.NewPurposeRef(a.Purpose)
	}
	ta.AppliedTraits = traitRefs(a.AppliedTraits)
	return ta
}

func (r *entityRefYAML) toReference() *objdef.Reference {
	if r.Projection == nil {
		return objdef.NewEntityRef(r.Name)
	}
	return objdef.NewReference(objdef.ObjectType_EntityRef, objdef.ObjectValue(r.Projection.toProjection()))
}

func (p *projectionYAML) toProjection() *objdef.ProjectionDef {
	proj := &objdef.ProjectionDef{}
	if p.Source != nil {
		proj.Source = p.Source.toReference()
	}
	for _, op := range p.Operations {
		proj.Operations = append(proj.Operations, op.toOperation())
	}
	return proj
}

func (o operationYAML) toOperation() *objdef.Operation {
	switch {
	case o.ReplaceAsForeignKey != nil:
		op := &objdef.Operation{Kind: objdef.OperationKind_ReplaceAsForeignKey, Reference: o.ReplaceAsForeignKey.Reference}
		if o.ReplaceAsForeignKey.ReplaceWith != nil {
			op.ReplaceWith = o.ReplaceAsForeignKey.ReplaceWith.toTypeAttribute()
		}
		return op
	case o.AddTypeAttribute != nil:
		return objdef.NewAddTypeAttribute(o.AddTypeAttribute.toTypeAttribute())
	case o.ExcludeAttributes != nil:
		return objdef.NewExcludeAttributes(o.ExcludeAttributes...)
	case o.IncludeAttributes != nil:
		return objdef.NewIncludeAttributes(o.IncludeAttributes...)
	case o.RenameAttributes != nil:
		return objdef.NewRenameAttributes(o.RenameAttributes.Format, o.RenameAttributes.ApplyTo...)
	}
	// kind is left empty, integrity check reports it
	return &objdef.Operation{}
}

func traitRefs(tt []traitRefYAML) []*objdef.Reference {
	var res []*objdef.Reference
	for _, t := range tt {
		args := make([]*objdef.Argument, 0, len(t.Arguments))
		for _, a := range t.Arguments {
			args = append(args, objdef.NewArgument(a.Name, a.Value.toValue()))
		}
		res = append(res, objdef.NewTraitRef(t.Trait, args...))
	}
	return res
}

func (v valueYAML) toValue() objdef.RefValue {
	if v.Constant != nil {
		return objdef.ObjectValue(objdef.NewConstantEntity(v.Constant.ConstantEntity, v.Constant.Shape, v.Constant.Values...))
	}
	return objdef.ConstantValue(v.Scalar)
}
