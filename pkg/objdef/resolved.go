/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

// Trait with parameter values bound
type ResolvedTrait struct {
	TraitName string
	// Trait definition. Nil for traits synthesized by resolution
	Trait  *TraitDef
	Params []string
	Values []RefValue
}

func NewResolvedTrait(name string, trait *TraitDef) *ResolvedTrait {
	return &ResolvedTrait{TraitName: name, Trait: trait}
}

// Sets parameter value, adds parameter if absent
func (t *ResolvedTrait) Set(param string, value RefValue) *ResolvedTrait {
	for i, p := range t.Params {
		if p == param {
			t.Values[i] = value
			return t
		}
	}
	t.Params = append(t.Params, param)
	t.Values = append(t.Values, value)
	return t
}

// Returns value of parameter
func (t *ResolvedTrait) ValueOf(param string) RefValue {
	for i, p := range t.Params {
		if p == param {
			return t.Values[i]
		}
	}
	return RefValue{}
}

// Returns value of the first parameter which has value
func (t *ResolvedTrait) First() RefValue {
	for _, v := range t.Values {
		if !v.IsEmpty() {
			return v
		}
	}
	return RefValue{}
}

func (t *ResolvedTrait) copy() *ResolvedTrait {
	return &ResolvedTrait{
		TraitName: t.TraitName,
		Trait:     t.Trait,
		Params:    append([]string(nil), t.Params...),
		Values:    append([]RefValue(nil), t.Values...),
	}
}

// Ordered set of resolved traits, unique by name
type ResolvedTraitSet struct {
	traits []*ResolvedTrait
}

func NewResolvedTraitSet(traits ...*ResolvedTrait) *ResolvedTraitSet {
	s := &ResolvedTraitSet{}
	for _, t := range traits {
		s.Merge(t)
	}
	return s
}

// Adds trait. If trait with the same name exists, values set in t override existing ones
func (s *ResolvedTraitSet) Merge(t *ResolvedTrait) {
	for i, e := range s.traits {
		if e.TraitName != t.TraitName {
			continue
		}
		m := e.copy()
		if t.Trait != nil {
			m.Trait = t.Trait
		}
		for j, p := range t.Params {
			if !t.Values[j].IsEmpty() || m.ValueOf(p).IsEmpty() {
				m.Set(p, t.Values[j])
			}
		}
		s.traits[i] = m
		return
	}
	s.traits = append(s.traits, t.copy())
}

// Merges all traits of other set
func (s *ResolvedTraitSet) MergeSet(other *ResolvedTraitSet) {
	if other == nil {
		return
	}
	for _, t := range other.traits {
		s.Merge(t)
	}
}

// Returns trait by name
func (s *ResolvedTraitSet) Find(name string) *ResolvedTrait {
	if s == nil {
		return nil
	}
	for _, t := range s.traits {
		if t.TraitName == name {
			return t
		}
	}
	return nil
}

// Returns true if set contains trait
func (s *ResolvedTraitSet) Has(name string) bool {
	return s.Find(name) != nil
}

func (s *ResolvedTraitSet) All() []*ResolvedTrait {
	if s == nil {
		return nil
	}
	return s.traits
}

func (s *ResolvedTraitSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.traits)
}

// Returns deep copy of the set
func (s *ResolvedTraitSet) Copy() *ResolvedTraitSet {
	c := &ResolvedTraitSet{}
	if s != nil {
		for _, t := range s.traits {
			c.traits = append(c.traits, t.copy())
		}
	}
	return c
}

// Attribute of resolved entity
type ResolvedAttribute struct {
	Name string
	// Attribute definition the attribute was produced from
	Target IObject
	Traits *ResolvedTraitSet
	// Node where the attribute was lodged
	AttCtx *AttributeContext
}

// Returns copy which can be renamed or re-traited without affecting the origin
func (a *ResolvedAttribute) Copy() *ResolvedAttribute {
	return &ResolvedAttribute{Name: a.Name, Target: a.Target, Traits: a.Traits.Copy(), AttCtx: a.AttCtx}
}

// Returns rows of the constant entity of is.linkedEntity.identifier trait
func (a *ResolvedAttribute) LinkedEntityRows() [][]string {
	t := a.Traits.Find(TraitName_LinkedEntityIdentifier)
	if t == nil {
		return nil
	}
	if ce, ok := t.First().Object().(*ConstantEntityDef); ok {
		return ce.Values
	}
	return nil
}

// Entity with resolved attributes and provenance tree
type ResolvedEntity struct {
	Entity     *EntityDef
	Attributes []*ResolvedAttribute
	Traits     *ResolvedTraitSet
	AttCtx     *AttributeContext
}

// Returns attribute by name
func (e *ResolvedEntity) Attribute(name string) *ResolvedAttribute {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Adds attribute, replaces existing attribute with the same name in place
func (e *ResolvedEntity) AddAttribute(a *ResolvedAttribute) {
	for i, existing := range e.Attributes {
		if existing.Name == a.Name {
			e.Attributes[i] = a
			return
		}
	}
	e.Attributes = append(e.Attributes, a)
}
