/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"strconv"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/objdef"
)

// Returns parameters of the trait, parameters of base traits first.
// Parameter redeclared by derived trait replaces the base one in place
func (c *Corpus) traitParameters(trait *objdef.TraitDef, opts *ResolveOptions) []*objdef.ParameterDef {
	var chain []*objdef.TraitDef
	visited := make(map[*objdef.TraitDef]bool)
	for t := trait; t != nil && !visited[t]; {
		visited[t] = true
		chain = append(chain, t)
		t, _ = c.FetchDefinition(t.ExtendsTrait, opts).(*objdef.TraitDef)
	}

	var params []*objdef.ParameterDef
	for i := len(chain) - 1; i >= 0; i-- {
	nextParam:
		for _, p := range chain[i].Parameters {
			for j, existing := range params {
				if existing.ParamName == p.ParamName {
					params[j] = p
					continue nextParam
				}
			}
			params = append(params, p)
		}
	}
	return params
}

// Returns parameter the argument is bound to: by name if argument is named, next positional otherwise
func matchParameter(params []*objdef.ParameterDef, arg *objdef.Argument, next *int) *objdef.ParameterDef {
	if arg.ArgName != "" {
		for _, p := range params {
			if p.ParamName == arg.ArgName {
				return p
			}
		}
		return nil
	}
	if *next >= len(params) {
		return nil
	}
	p := params[*next]
	*next++
	return p
}

func (c *Corpus) newTraitScope(ref *objdef.Reference, opts *ResolveOptions) *traitScope {
	s := &traitScope{ref: ref, bound: make(map[string]bool)}
	if trait, ok := c.FetchDefinition(ref, opts).(*objdef.TraitDef); ok {
		s.trait = trait
		s.params = c.traitParameters(trait, opts)
	}
	return s
}

// Binds argument to parameter of the scope trait and resolves its value
func (c *Corpus) resolveArgument(s *traitScope, arg *objdef.Argument, opts *ResolveOptions) {
	if s.trait == nil {
		return
	}
	param := matchParameter(s.params, arg, &s.next)
	if param == nil {
		name := arg.ArgName
		if name == "" {
			name = "#" + strconv.Itoa(s.next+1)
		}
		c.report(diag.Level_Error, phase_ResolveTraitArgs, arg.AtCorpusPath(),
			diag.ErrUnresolvedSymbol("parameter %s of trait %s", name, s.trait.TraitName))
		return
	}
	s.bound[param.ParamName] = true
	arg.Resolve(param, c.constTypeCheck(param, arg, opts))
}

// Reports required parameters of the scope trait which have neither argument nor default value
func (c *Corpus) checkRequiredParameters(s *traitScope) {
	for _, p := range s.params {
		if p.Required && !s.bound[p.ParamName] && p.DefaultValue.IsEmpty() {
			c.report(diag.Level_Error, phase_ResolveTraitArgs, s.ref.AtCorpusPath(),
				diag.ErrMissingRequiredParameter("parameter %s of trait %s", p.ParamName, s.trait.TraitName))
		}
	}
}

// Returns intrinsic base type the data type derives from. Empty if none
func (c *Corpus) baseTypeOf(dataType *objdef.Reference, opts *ResolveOptions) string {
	ref := dataType
	visited := make(map[objdef.IObject]bool)
	for ref != nil {
		if isIntrinsic(ref) {
			return ref.Value.Name()
		}
		dt, ok := c.FetchDefinition(ref, opts).(*objdef.DataTypeDef)
		if !ok || visited[dt] {
			return ""
		}
		visited[dt] = true
		ref = dt.ExtendsDataType
	}
	return ""
}

// Returns argument value replacement: the object the value names if parameter data type
// derives from intrinsic base type, the value itself otherwise.
// Attribute names which can not be resolved are turned into attribute promises
func (c *Corpus) constTypeCheck(param *objdef.ParameterDef, arg *objdef.Argument, opts *ResolveOptions) objdef.RefValue {
	value := arg.Value
	base := c.baseTypeOf(param.DataType, opts)
	if base == "" || base == objdef.BaseType_Object {
		return value
	}

	switch value.Kind() {
	case objdef.RefValueKind_Object:
		if !objdef.BaseTypeAccepts(base, value.Object().ObjectType()) {
			c.report(diag.Level_Error, phase_ResolveTraitArgs, arg.AtCorpusPath(),
				diag.ErrKindMismatch("parameter %s: expected %s, found %v", param.ParamName, base, value.Object().ObjectType()))
		}
		return value
	case objdef.RefValueKind_Null:
		return value
	}

	text := value.Text()
	if _, ok := objdef.ParseAttributePromise(text); ok {
		return value
	}

	doc := arg.InDocument()
	found, ok := c.resolveSymbol(opts, doc, text, objdef.ObjectType_Null, true)
	switch {
	case !ok && base == objdef.BaseType_Attribute:
		return objdef.ConstantValue(objdef.AttributePromise(text))
	case !ok:
		c.report(c.unresolvedLevel(opts), phase_ResolveTraitArgs, arg.AtCorpusPath(),
			diag.ErrUnresolvedSymbol("parameter %s: %s %s", param.ParamName, base, text))
		return value
	case !objdef.BaseTypeAccepts(base, found.ObjectType()):
		c.report(diag.Level_Error, phase_ResolveTraitArgs, arg.AtCorpusPath(),
			diag.ErrKindMismatch("parameter %s: expected %s, found %v %s", param.ParamName, base, found.ObjectType(), text))
		return value
	}
	return objdef.ObjectValue(found)
}

// Returns resolved traits of entity, attribute, attribute group, data type, purpose or reference.
//
// Result is cached by cache tag and must not be modified
func (c *Corpus) ResolveTraits(obj objdef.IObject, opts *ResolveOptions) *objdef.ResolvedTraitSet {
	if obj == nil {
		return objdef.NewResolvedTraitSet()
	}
	opts = opts.withWrtDoc(obj.InDocument())

	tag := c.CacheTag(opts, obj, cacheKind_Traits, "", false)
	if tag != "" {
		if set, ok := c.traitsCache.Get(tag); ok {
			if refs, ok := c.DefinitionReferenceSymbols(obj, cacheKind_Traits); ok {
				opts.SymbolRefSet.Merge(refs)
			}
			return set
		}
	}

	sub := opts.child()
	key := definitionKey(obj, cacheKind_Traits)
	if !sub.enter(key) {
		// circular definition
		return objdef.NewResolvedTraitSet()
	}
	set := c.computeTraits(obj, sub)
	sub.leave(key)

	if tag == "" {
		return set
	}
	c.RegisterDefinitionReferenceSymbols(obj, cacheKind_Traits, sub.SymbolRefSet)
	opts.SymbolRefSet.Merge(sub.SymbolRefSet)
	c.traitsCache.Put(c.CacheTag(opts, obj, cacheKind_Traits, "", false), set)
	return set
}

func (c *Corpus) computeTraits(obj objdef.IObject, opts *ResolveOptions) *objdef.ResolvedTraitSet {
	set := objdef.NewResolvedTraitSet()
	switch o := obj.(type) {
	case *objdef.EntityDef:
		if base, ok := c.FetchDefinition(o.ExtendsEntity, opts).(*objdef.EntityDef); ok {
			set.MergeSet(c.ResolveTraits(base, opts))
		}
		c.mergeTraitRefs(set, o.ExhibitsTraits, opts)
	case *objdef.TypeAttribute:
		set.MergeSet(c.referenceTraits(o.DataType, opts))
		set.MergeSet(c.referenceTraits(o.Purpose, opts))
		c.mergeTraitRefs(set, o.AppliedTraits, opts)
	case *objdef.EntityAttribute:
		set.MergeSet(c.referenceTraits(o.Purpose, opts))
		c.mergeTraitRefs(set, o.AppliedTraits, opts)
	case *objdef.DataTypeDef:
		set.MergeSet(c.referenceTraits(o.ExtendsDataType, opts))
		c.mergeTraitRefs(set, o.ExhibitsTraits, opts)
	case *objdef.PurposeDef:
		set.MergeSet(c.referenceTraits(o.ExtendsPurpose, opts))
		c.mergeTraitRefs(set, o.ExhibitsTraits, opts)
	case *objdef.AttributeGroupDef:
		c.mergeTraitRefs(set, o.ExhibitsTraits, opts)
	case *objdef.Reference:
		if o.ObjectType() == objdef.ObjectType_TraitRef {
			if rt := c.resolveTraitRef(o, opts); rt != nil {
				set.Merge(rt)
			}
			break
		}
		set.MergeSet(c.referenceTraits(o, opts))
	}
	return set
}

// Returns traits of the referenced definition with traits applied to the reference
func (c *Corpus) referenceTraits(ref *objdef.Reference, opts *ResolveOptions) *objdef.ResolvedTraitSet {
	if ref == nil {
		return nil
	}
	set := objdef.NewResolvedTraitSet()
	if def := c.FetchDefinition(ref, opts); def != nil {
		set.MergeSet(c.ResolveTraits(def, opts))
	}
	c.mergeTraitRefs(set, ref.AppliedTraits, opts)
	return set
}

func (c *Corpus) mergeTraitRefs(set *objdef.ResolvedTraitSet, refs []*objdef.Reference, opts *ResolveOptions) {
	for _, ref := range refs {
		if rt := c.resolveTraitRef(ref, opts); rt != nil {
			set.Merge(rt)
		}
	}
}

// Returns trait with parameter values: arguments over defaults. Nil if trait is not resolved
func (c *Corpus) resolveTraitRef(ref *objdef.Reference, opts *ResolveOptions) *objdef.ResolvedTrait {
	trait, ok := c.FetchDefinition(ref, opts).(*objdef.TraitDef)
	if !ok {
		return nil
	}
	params := c.traitParameters(trait, opts)
	rt := objdef.NewResolvedTrait(trait.TraitName, trait)
	for _, p := range params {
		rt.Set(p.ParamName, p.DefaultValue)
	}
	next := 0
	for _, arg := range ref.Arguments {
		p := arg.Parameter()
		if p == nil {
			p = matchParameter(params, arg, &next)
		} else if arg.ArgName == "" {
			next++
		}
		if p != nil {
			rt.Set(p.ParamName, arg.EffectiveValue())
		}
	}
	return rt
}
