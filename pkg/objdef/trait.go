/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

// Trait definition
type TraitDef struct {
	object
	TraitName    string
	ExtendsTrait *Reference
	Parameters   []*ParameterDef
}

func NewTrait(name string, params ...*ParameterDef) *TraitDef {
	return &TraitDef{TraitName: name, Parameters: params}
}

func (t *TraitDef) ObjectType() ObjectType {
	return ObjectType_TraitDef
}

func (t *TraitDef) Name() string {
	return t.TraitName
}

func (t *TraitDef) Extends(trait string) *TraitDef {
	t.ExtendsTrait = NewTraitRef(trait)
	return t
}

func (t *TraitDef) MissingFields() []string {
	return required(nil).check("traitName", t.TraitName != "")
}

func (t *TraitDef) pathFrom(pathFrom string) string {
	return pathFrom + t.TraitName
}

func (t *TraitDef) children(path string) (cc []child) {
	cc = refChild(t.ExtendsTrait, path+segExtendsTrait, cc)
	for _, p := range t.Parameters {
		cc = append(cc, child{obj: p, pathFrom: path + segHasParameters})
	}
	return cc
}

// Trait parameter definition
type ParameterDef struct {
	object
	ParamName    string
	DataType     *Reference
	DefaultValue RefValue
	Required     bool
}

func NewParameter(name, dataType string, required bool) *ParameterDef {
	p := &ParameterDef{ParamName: name, Required: required}
	if dataType != "" {
		p.DataType = NewDataTypeRef(dataType)
	}
	return p
}

func (p *ParameterDef) ObjectType() ObjectType {
	return ObjectType_ParameterDef
}

func (p *ParameterDef) Name() string {
	return p.ParamName
}

func (p *ParameterDef) MissingFields() []string {
	return required(nil).check("name", p.ParamName != "")
}

func (p *ParameterDef) pathFrom(pathFrom string) string {
	return pathFrom + p.ParamName
}

func (p *ParameterDef) children(path string) (cc []child) {
	cc = refChild(p.DataType, path+segDataType, cc)
	if p.DefaultValue.Kind() == RefValueKind_Object {
		cc = append(cc, child{obj: p.DefaultValue.Object(), pathFrom: path + segDefaultValue})
	}
	return cc
}

// Data type definition
type DataTypeDef struct {
	object
	DataTypeName    string
	ExtendsDataType *Reference
	ExhibitsTraits  []*Reference
}

func NewDataType(name, extends string) *DataTypeDef {
	d := &DataTypeDef{DataTypeName: name}
	if extends != "" {
		d.ExtendsDataType = NewDataTypeRef(extends)
	}
	return d
}

func (d *DataTypeDef) ObjectType() ObjectType {
	return ObjectType_DataTypeDef
}

func (d *DataTypeDef) Name() string {
	return d.DataTypeName
}

func (d *DataTypeDef) MissingFields() []string {
	return required(nil).check("dataTypeName", d.DataTypeName != "")
}

func (d *DataTypeDef) pathFrom(pathFrom string) string {
	return pathFrom + d.DataTypeName
}

func (d *DataTypeDef) children(path string) (cc []child) {
	cc = refChild(d.ExtendsDataType, path+segExtendsDataType, cc)
	return refsChildren(d.ExhibitsTraits, path+segExhibitsTraits, cc)
}

// Purpose definition
type PurposeDef struct {
	object
	PurposeName    string
	ExtendsPurpose *Reference
	ExhibitsTraits []*Reference
}

func NewPurpose(name string, traits ...*Reference) *PurposeDef {
	return &PurposeDef{PurposeName: name, ExhibitsTraits: traits}
}

func (p *PurposeDef) ObjectType() ObjectType {
	return ObjectType_PurposeDef
}

func (p *PurposeDef) Name() string {
	return p.PurposeName
}

func (p *PurposeDef) MissingFields() []string {
	return required(nil).check("purposeName", p.PurposeName != "")
}

func (p *PurposeDef) pathFrom(pathFrom string) string {
	return pathFrom + p.PurposeName
}

func (p *PurposeDef) children(path string) (cc []child) {
	cc = refChild(p.ExtendsPurpose, path+segExtendsPurpose, cc)
	return refsChildren(p.ExhibitsTraits, path+segExhibitsTraits, cc)
}

// Entity whose rows are constant values
type ConstantEntityDef struct {
	object
	ConstantEntityName string
	EntityShape        *Reference
	Values             [][]string
}

func NewConstantEntity(name, shape string, values ...[]string) *ConstantEntityDef {
	c := &ConstantEntityDef{ConstantEntityName: name, Values: values}
	if shape != "" {
		c.EntityShape = NewEntityRef(shape)
	}
	return c
}

func (c *ConstantEntityDef) ObjectType() ObjectType {
	return ObjectType_ConstantEntityDef
}

func (c *ConstantEntityDef) Name() string {
	return c.ConstantEntityName
}

func (c *ConstantEntityDef) MissingFields() []string {
	return required(nil).check("entityShape", c.EntityShape != nil)
}

func (c *ConstantEntityDef) pathFrom(pathFrom string) string {
	if c.ConstantEntityName == "" {
		return pathFrom + UnspecifiedName
	}
	return pathFrom + c.ConstantEntityName
}

func (c *ConstantEntityDef) children(path string) []child {
	return refChild(c.EntityShape, path+segEntityShape, nil)
}
