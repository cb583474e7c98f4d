/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

// Entity definition
type EntityDef struct {
	object
	EntityName     string
	ExtendsEntity  *Reference
	ExhibitsTraits []*Reference
	// Type attributes, entity attributes and attribute group references
	Attributes []IObject
}

func NewEntity(name string) *EntityDef {
	return &EntityDef{EntityName: name}
}

func (e *EntityDef) ObjectType() ObjectType {
	return ObjectType_EntityDef
}

func (e *EntityDef) Name() string {
	return e.EntityName
}

// Sets entity to extend
func (e *EntityDef) Extends(entity string) *EntityDef {
	e.ExtendsEntity = NewEntityRef(entity)
	return e
}

// Adds exhibited trait references
func (e *EntityDef) Exhibits(traits ...*Reference) *EntityDef {
	e.ExhibitsTraits = append(e.ExhibitsTraits, traits...)
	return e
}

// Adds type attribute and returns it
func (e *EntityDef) AddTypeAttribute(name, dataType string) *TypeAttribute {
	a := NewTypeAttribute(name, dataType)
	e.Attributes = append(e.Attributes, a)
	return a
}

// Adds entity attribute referencing entity and returns it
func (e *EntityDef) AddEntityAttribute(name string, entity *Reference) *EntityAttribute {
	a := &EntityAttribute{AttributeName: name, Entity: entity}
	e.Attributes = append(e.Attributes, a)
	return a
}

// Adds reference to attribute group
func (e *EntityDef) AddGroup(group string) *EntityDef {
	e.Attributes = append(e.Attributes, NewAttributeGroupRef(group))
	return e
}

func (e *EntityDef) MissingFields() []string {
	return required(nil).check("entityName", e.EntityName != "")
}

func (e *EntityDef) pathFrom(pathFrom string) string {
	return pathFrom + e.EntityName
}

func (e *EntityDef) children(path string) (cc []child) {
	cc = refChild(e.ExtendsEntity, path+segExtendsEntity, cc)
	cc = refsChildren(e.ExhibitsTraits, path+segExhibitsTraits, cc)
	for _, a := range e.Attributes {
		cc = append(cc, child{obj: a, pathFrom: path + segHasAttributes})
	}
	return cc
}

// Attribute typed by data type
type TypeAttribute struct {
	object
	AttributeName string
	DataType      *Reference
	Purpose       *Reference
	AppliedTraits []*Reference
}

func NewTypeAttribute(name, dataType string) *TypeAttribute {
	a := &TypeAttribute{AttributeName: name}
	if dataType != "" {
		a.DataType = NewDataTypeRef(dataType)
	}
	return a
}

func (a *TypeAttribute) ObjectType() ObjectType {
	return ObjectType_TypeAttributeDef
}

func (a *TypeAttribute) Name() string {
	return a.AttributeName
}

// Adds applied trait references
func (a *TypeAttribute) Apply(traits ...*Reference) *TypeAttribute {
	a.AppliedTraits = append(a.AppliedTraits, traits...)
	return a
}

func (a *TypeAttribute) MissingFields() []string {
	return required(nil).check("name", a.AttributeName != "")
}

func (a *TypeAttribute) pathFrom(pathFrom string) string {
	return pathFrom + a.AttributeName
}

func (a *TypeAttribute) children(path string) (cc []child) {
	cc = refChild(a.Purpose, path+segPurpose, cc)
	cc = refChild(a.DataType, path+segDataType, cc)
	return refsChildren(a.AppliedTraits, path+segAppliedTraits, cc)
}

// Attribute which refers to another entity
type EntityAttribute struct {
	object
	AttributeName string
	Entity        *Reference
	Purpose       *Reference
	AppliedTraits []*Reference
	// Entity is a projection whose source attributes are alternative targets
	IsPolymorphicSource bool
}

func (a *EntityAttribute) ObjectType() ObjectType {
	return ObjectType_EntityAttributeDef
}

func (a *EntityAttribute) Name() string {
	return a.AttributeName
}

func (a *EntityAttribute) Apply(traits ...*Reference) *EntityAttribute {
	a.AppliedTraits = append(a.AppliedTraits, traits...)
	return a
}

func (a *EntityAttribute) MissingFields() []string {
	return required(nil).
		check("name", a.AttributeName != "").
		check("entity", a.Entity != nil)
}

func (a *EntityAttribute) pathFrom(pathFrom string) string {
	return pathFrom + a.AttributeName
}

func (a *EntityAttribute) children(path string) (cc []child) {
	cc = refChild(a.Purpose, path+segPurpose, cc)
	cc = refChild(a.Entity, path+segEntity, cc)
	return refsChildren(a.AppliedTraits, path+segAppliedTraits, cc)
}

// Named group of attributes
type AttributeGroupDef struct {
	object
	GroupName      string
	Members        []IObject
	ExhibitsTraits []*Reference
}

func NewAttributeGroup(name string, members ...IObject) *AttributeGroupDef {
	return &AttributeGroupDef{GroupName: name, Members: members}
}

func (g *AttributeGroupDef) ObjectType() ObjectType {
	return ObjectType_AttributeGroupDef
}

func (g *AttributeGroupDef) Name() string {
	return g.GroupName
}

func (g *AttributeGroupDef) MissingFields() []string {
	return required(nil).check("attributeGroupName", g.GroupName != "")
}

func (g *AttributeGroupDef) pathFrom(pathFrom string) string {
	return pathFrom + g.GroupName
}

func (g *AttributeGroupDef) children(path string) (cc []child) {
	for _, m := range g.Members {
		cc = append(cc, child{obj: m, pathFrom: path + segMembers})
	}
	return refsChildren(g.ExhibitsTraits, path+segExhibitsTraits, cc)
}
