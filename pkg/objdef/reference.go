/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import "strconv"

// Reference to entity, attribute, attribute group, trait, data type or purpose.
//
// Value is either symbol name to be resolved or inline object
type Reference struct {
	object
	kind          ObjectType
	Value         RefValue
	AppliedTraits []*Reference
	// Arguments of trait reference
	Arguments []*Argument
}

// Creates reference of specified kind. Panics if kind is not a reference kind
func NewReference(kind ObjectType, value RefValue) *Reference {
	if !kind.IsReference() {
		panic(ErrNotReferenceKind(kind))
	}
	return &Reference{kind: kind, Value: value}
}

func NewEntityRef(name string) *Reference {
	return NewReference(ObjectType_EntityRef, NameValue(name))
}

func NewAttributeRef(name string) *Reference {
	return NewReference(ObjectType_AttributeRef, NameValue(name))
}

func NewAttributeGroupRef(name string) *Reference {
	return NewReference(ObjectType_AttributeGroupRef, NameValue(name))
}

func NewDataTypeRef(name string) *Reference {
	return NewReference(ObjectType_DataTypeRef, NameValue(name))
}

func NewPurposeRef(name string) *Reference {
	return NewReference(ObjectType_PurposeRef, NameValue(name))
}

// Creates trait reference with arguments
func NewTraitRef(name string, args ...*Argument) *Reference {
	r := NewReference(ObjectType_TraitRef, NameValue(name))
	r.Arguments = args
	return r
}

func (r *Reference) ObjectType() ObjectType {
	return r.kind
}

// Returns referenced symbol name or inline object name
func (r *Reference) Name() string {
	switch r.Value.Kind() {
	case RefValueKind_Name:
		return r.Value.Name()
	case RefValueKind_Object:
		return r.Value.Object().Name()
	}
	return ""
}

// Returns true if reference holds inline object
func (r *Reference) IsInline() bool {
	return r.Value.Kind() == RefValueKind_Object
}

func (r *Reference) MissingFields() []string {
	return required(nil).check("value", !r.Value.IsEmpty())
}

func (r *Reference) pathFrom(pathFrom string) string {
	if r.Value.Kind() == RefValueKind_Name {
		return pathFrom + r.Value.Name()
	}
	return pathFrom + InlineRefName
}

func (r *Reference) children(path string) (cc []child) {
	if r.Value.Kind() == RefValueKind_Object {
		cc = append(cc, child{obj: r.Value.Object(), pathFrom: path + segInline})
	}
	cc = refsChildren(r.AppliedTraits, path+segAppliedTraits, cc)
	for i, a := range r.Arguments {
		cc = append(cc, child{obj: a, pathFrom: path + segArguments + strconv.Itoa(i) + pathSeparator})
	}
	return cc
}

// Trait argument, named or positional
type Argument struct {
	object
	ArgName string
	Value   RefValue

	resolved  RefValue
	parameter *ParameterDef
}

func NewArgument(name string, value RefValue) *Argument {
	return &Argument{ArgName: name, Value: value}
}

func (a *Argument) ObjectType() ObjectType {
	return ObjectType_ArgumentDef
}

func (a *Argument) Name() string {
	return a.ArgName
}

// Returns resolved value if argument was resolved, declared value otherwise
func (a *Argument) EffectiveValue() RefValue {
	if a.resolved.Kind() != RefValueKind_Null {
		return a.resolved
	}
	return a.Value
}

// Binds argument to parameter and stores value replacement
func (a *Argument) Resolve(param *ParameterDef, value RefValue) {
	a.parameter = param
	a.resolved = value
}

// Returns parameter the argument was matched to. Nil if not resolved yet
func (a *Argument) Parameter() *ParameterDef {
	return a.parameter
}

func (a *Argument) MissingFields() []string {
	return required(nil).check("value", !a.Value.IsEmpty())
}

func (a *Argument) pathFrom(pathFrom string) string {
	if a.ArgName != "" {
		return pathFrom + a.ArgName
	}
	return pathFrom + segArgumentValue
}

func (a *Argument) children(path string) []child {
	if a.Value.Kind() == RefValueKind_Object {
		return []child{{obj: a.Value.Object(), pathFrom: path + segInline}}
	}
	return nil
}
