/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import "strconv"

// Projection: source entity transformed by a chain of operations
type ProjectionDef struct {
	object
	Source     *Reference
	Operations []*Operation
}

func NewProjection(source *Reference, ops ...*Operation) *ProjectionDef {
	return &ProjectionDef{Source: source, Operations: ops}
}

func (p *ProjectionDef) ObjectType() ObjectType {
	return ObjectType_ProjectionDef
}

func (p *ProjectionDef) Name() string {
	return segProjection
}

// Returns entity attribute which owns the projection through entity reference. Nil if none
func (p *ProjectionDef) OwningAttribute() *EntityAttribute {
	ref := p.Owner()
	if ref == nil {
		return nil
	}
	att, _ := ref.Owner().(*EntityAttribute)
	return att
}

// Returns true if projection is the entity of an attribute marked as polymorphic source
func (p *ProjectionDef) IsPolymorphicSource() bool {
	att := p.OwningAttribute()
	return att != nil && att.IsPolymorphicSource
}

func (p *ProjectionDef) MissingFields() []string {
	return required(nil).check("source", p.Source != nil)
}

func (p *ProjectionDef) pathFrom(pathFrom string) string {
	return pathFrom + segProjection
}

func (p *ProjectionDef) children(path string) (cc []child) {
	cc = refChild(p.Source, path+segSource, cc)
	for i, op := range p.Operations {
		cc = append(cc, child{obj: op, pathFrom: path + segOperation + strconv.Itoa(i+1) + pathSeparator})
	}
	return cc
}

// Projection operation
type Operation struct {
	object
	Kind OperationKind
	// ReplaceAsForeignKey: name of the identifying attribute of the source
	Reference string
	// ReplaceAsForeignKey: foreign key attribute to produce
	ReplaceWith *TypeAttribute
	// AddTypeAttribute: attribute to add
	NewAttribute *TypeAttribute
	// Exclude/IncludeAttributes: attribute names
	Names []string
	// RenameAttributes: format, "{m}" is replaced by member name, "{M}" by capitalized member name,
	// "{a}" by owning attribute name, "{A}" by capitalized owning attribute name
	RenameFormat string
	// RenameAttributes: attributes to rename, all if empty
	ApplyTo []string
}

func NewReplaceAsForeignKey(reference string, replaceWith *TypeAttribute) *Operation {
	return &Operation{Kind: OperationKind_ReplaceAsForeignKey, Reference: reference, ReplaceWith: replaceWith}
}

func NewAddTypeAttribute(att *TypeAttribute) *Operation {
	return &Operation{Kind: OperationKind_AddTypeAttribute, NewAttribute: att}
}

func NewExcludeAttributes(names ...string) *Operation {
	return &Operation{Kind: OperationKind_ExcludeAttributes, Names: names}
}

func NewIncludeAttributes(names ...string) *Operation {
	return &Operation{Kind: OperationKind_IncludeAttributes, Names: names}
}

func NewRenameAttributes(format string, applyTo ...string) *Operation {
	return &Operation{Kind: OperationKind_RenameAttributes, RenameFormat: format, ApplyTo: applyTo}
}

func (o *Operation) ObjectType() ObjectType {
	return ObjectType_OperationDef
}

func (o *Operation) Name() string {
	return o.Kind.String()
}

func (o *Operation) MissingFields() []string {
	r := required(nil).check("kind", o.Kind != OperationKind_Null)
	switch o.Kind {
	case OperationKind_ReplaceAsForeignKey:
		r = r.check("reference", o.Reference != "").check("replaceWith", o.ReplaceWith != nil)
	case OperationKind_AddTypeAttribute:
		r = r.check("typeAttribute", o.NewAttribute != nil)
	case OperationKind_ExcludeAttributes, OperationKind_IncludeAttributes:
		r = r.check("attributes", len(o.Names) > 0)
	case OperationKind_RenameAttributes:
		r = r.check("renameFormat", o.RenameFormat != "")
	}
	return r
}

func (o *Operation) pathFrom(pathFrom string) string {
	return pathFrom + o.Kind.String()
}

func (o *Operation) children(path string) (cc []child) {
	if o.ReplaceWith != nil {
		cc = append(cc, child{obj: o.ReplaceWith, pathFrom: path + segReplaceWith})
	}
	if o.NewAttribute != nil {
		cc = append(cc, child{obj: o.NewAttribute, pathFrom: path + segNewAttribute})
	}
	return cc
}
