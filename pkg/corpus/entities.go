/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/objdef"
)

// Resolves entity: attributes with their traits and attribute context tree.
//
// Entity attributes become foreign keys named by the attribute and the identifying attribute
// of the referenced entity. Result is cached by cache tag and must not be modified
func (c *Corpus) ResolveEntity(entity *objdef.EntityDef, opts *ResolveOptions) *objdef.ResolvedEntity {
	opts = opts.withWrtDoc(entity.InDocument())

	tag := c.CacheTag(opts, entity, cacheKind_Entity, "", false)
	if tag != "" {
		if re, ok := c.entitiesCache.Get(tag); ok {
			if refs, ok := c.DefinitionReferenceSymbols(entity, cacheKind_Entity); ok {
				opts.SymbolRefSet.Merge(refs)
			}
			return re
		}
	}

	sub := opts.child()
	key := definitionKey(entity, cacheKind_Entity)
	sub.enter(key)

	root := objdef.NewAttributeContext(nil, objdef.AttributeContextType_Entity, entity.EntityName, entity)
	re := &objdef.ResolvedEntity{Entity: entity, Traits: c.ResolveTraits(entity, sub), AttCtx: root}
	root.ExhibitsTraits = re.Traits
	c.buildEntity(re, root, entity, sub)

	sub.leave(key)

	if tag == "" {
		return re
	}
	c.RegisterDefinitionReferenceSymbols(entity, cacheKind_Entity, sub.SymbolRefSet)
	opts.SymbolRefSet.Merge(sub.SymbolRefSet)
	c.entitiesCache.Put(c.CacheTag(opts, entity, cacheKind_Entity, "", false), re)
	return re
}

// Adds attributes of entity e and entities it extends to re, context nodes are added under node
func (c *Corpus) buildEntity(re *objdef.ResolvedEntity, node *objdef.AttributeContext, e *objdef.EntityDef, opts *ResolveOptions) {
	if e.ExtendsEntity != nil {
		ext := objdef.NewAttributeContext(node, objdef.AttributeContextType_EntityReferenceExtends, "extends", nil)
		if base, ok := c.FetchDefinition(e.ExtendsEntity, opts).(*objdef.EntityDef); ok {
			key := definitionKey(base, cacheKind_Entity)
			if opts.enter(key) {
				baseNode := objdef.NewAttributeContext(ext, objdef.AttributeContextType_Entity, base.EntityName, e.ExtendsEntity)
				baseNode.ExhibitsTraits = c.ResolveTraits(base, opts)
				c.buildEntity(re, baseNode, base, opts)
				opts.leave(key)
			} else {
				c.report(diag.Level_Error, component_ResolveEntity, e.AtCorpusPath(),
					diag.ErrUnsupportedOperation("circular extends of %s", base.EntityName))
			}
		}
	}
	for _, att := range e.Attributes {
		c.addAttribute(re, node, att, opts)
	}
}

func (c *Corpus) addAttribute(re *objdef.ResolvedEntity, node *objdef.AttributeContext, att objdef.IObject, opts *ResolveOptions) {
	switch a := att.(type) {
	case *objdef.TypeAttribute:
		ctx := objdef.NewAttributeContext(node, objdef.AttributeContextType_AttributeDefinition, a.AttributeName, a)
		ra := &objdef.ResolvedAttribute{Name: a.AttributeName, Target: a, Traits: c.ResolveTraits(a, opts), AttCtx: ctx}
		ctx.Attributes = append(ctx.Attributes, ra)
		re.AddAttribute(ra)
	case *objdef.EntityAttribute:
		c.addEntityAttribute(re, node, a, opts)
	case *objdef.Reference:
		ctx := objdef.NewAttributeContext(node, objdef.AttributeContextType_AttributeGroup, a.Name(), a)
		if group, ok := c.FetchDefinition(a, opts).(*objdef.AttributeGroupDef); ok {
			c.addGroupMembers(re, ctx, group, opts)
		}
	case *objdef.AttributeGroupDef:
		ctx := objdef.NewAttributeContext(node, objdef.AttributeContextType_AttributeGroup, a.GroupName, a)
		c.addGroupMembers(re, ctx, a, opts)
	}
}

func (c *Corpus) addGroupMembers(re *objdef.ResolvedEntity, ctx *objdef.AttributeContext, group *objdef.AttributeGroupDef, opts *ResolveOptions) {
	key := definitionKey(group, objdef.ObjectType_AttributeGroupDef.String())
	if !opts.enter(key) {
		c.report(diag.Level_Error, component_ResolveEntity, group.AtCorpusPath(),
			diag.ErrUnsupportedOperation("circular attribute group %s", group.GroupName))
		return
	}
	defer opts.leave(key)
	for _, m := range group.Members {
		c.addAttribute(re, ctx, m, opts)
	}
}

func (c *Corpus) addEntityAttribute(re *objdef.ResolvedEntity, node *objdef.AttributeContext, a *objdef.EntityAttribute, opts *ResolveOptions) {
	ctx := objdef.NewAttributeContext(node, objdef.AttributeContextType_AttributeDefinition, a.AttributeName, a)

	switch target := c.FetchDefinition(a.Entity, opts).(type) {
	case *objdef.EntityDef:
		ent := objdef.NewAttributeContext(ctx, objdef.AttributeContextType_Entity, target.EntityName, a.Entity)
		ent.ExhibitsTraits = c.ResolveTraits(target, opts)
		idAtt := identifyingAttribute(ent.ExhibitsTraits)
		if idAtt == "" {
			c.report(diag.Level_Warning, component_ResolveEntity, a.AtCorpusPath(),
				diag.ErrUnresolvedSymbol("%s has no identifying attribute", target.AtCorpusPath()))
			return
		}
		fkCtx := objdef.NewAttributeContext(generatedRound(ctx), objdef.AttributeContextType_AddedAttributeIdentity, objdef.ContextName_ForeignKey, nil)
		fk := &objdef.ResolvedAttribute{
			Name:   a.AttributeName + objdef.Capitalize(idAtt),
			Target: a,
			Traits: c.foreignKeyTraits(a, [][]string{{target.AtCorpusPath(), idAtt}}, opts),
			AttCtx: fkCtx,
		}
		fkCtx.Attributes = append(fkCtx.Attributes, fk)
		re.AddAttribute(fk)
	case *objdef.ProjectionDef:
		ent := objdef.NewAttributeContext(ctx, objdef.AttributeContextType_Entity, a.AttributeName, a.Entity)
		atts, _ := c.resolveProjection(ent, target, a, opts)
		round := generatedRound(ctx)
		for _, att := range atts {
			round.Attributes = append(round.Attributes, att)
			re.AddAttribute(att)
		}
	case nil:
		c.report(diag.Level_Warning, component_ResolveEntity, a.AtCorpusPath(),
			diag.ErrUnresolvedSymbol("entity %s", a.Entity.Name()))
	}
}

// Resolves projection, returns output attributes and path of the innermost source entity
func (c *Corpus) resolveProjection(ent *objdef.AttributeContext, proj *objdef.ProjectionDef, owner *objdef.EntityAttribute, opts *ResolveOptions) ([]*objdef.ResolvedAttribute, string) {
	key := definitionKey(proj, objdef.ObjectType_ProjectionDef.String())
	if !opts.enter(key) {
		c.report(diag.Level_Error, component_ResolveEntity, proj.AtCorpusPath(),
			diag.ErrUnsupportedOperation("circular projection"))
		return nil, ""
	}
	defer opts.leave(key)

	projCtx := objdef.NewAttributeContext(ent, objdef.AttributeContextType_Projection, objdef.ContextName_Projection, proj)
	srcCtx := objdef.NewAttributeContext(projCtx, objdef.AttributeContextType_Source, objdef.ContextName_Source, nil)

	var (
		atts       []*objdef.ResolvedAttribute
		sourcePath string
	)
	switch src := c.FetchDefinition(proj.Source, opts).(type) {
	case *objdef.EntityDef:
		srcEnt := objdef.NewAttributeContext(srcCtx, objdef.AttributeContextType_Entity, src.EntityName, proj.Source)
		sub := &objdef.ResolvedEntity{Entity: src, Traits: c.ResolveTraits(src, opts), AttCtx: srcEnt}
		srcEnt.ExhibitsTraits = sub.Traits
		srcKey := definitionKey(src, cacheKind_Entity)
		if opts.enter(srcKey) {
			c.buildEntity(sub, srcEnt, src, opts)
			opts.leave(srcKey)
		}
		for _, a := range sub.Attributes {
			atts = append(atts, a.Copy())
		}
		sourcePath = src.AtCorpusPath()
	case *objdef.ProjectionDef:
		nested := objdef.NewAttributeContext(srcCtx, objdef.AttributeContextType_Entity, objdef.ContextName_Projection, proj.Source)
		atts, sourcePath = c.resolveProjection(nested, src, owner, opts)
	case nil:
		if proj.Source != nil {
			c.report(diag.Level_Warning, component_ResolveEntity, proj.AtCorpusPath(),
				diag.ErrUnresolvedSymbol("projection source %s", proj.Source.Name()))
		}
	}

	opsCtx := objdef.NewAttributeContext(projCtx, objdef.AttributeContextType_Operations, objdef.ContextName_Operations, nil)
	polymorphic := owner != nil && owner.IsPolymorphicSource
	for i, op := range proj.Operations {
		opCtx := objdef.NewAttributeContext(opsCtx, op.Kind.ContextType(), fmt.Sprintf("operation/index%d/%s", i+1, op.Kind), op)
		atts = c.applyOperation(op, opCtx, atts, owner, sourcePath, polymorphic, opts)
	}
	return atts, sourcePath
}

func (c *Corpus) applyOperation(op *objdef.Operation, ctx *objdef.AttributeContext, atts []*objdef.ResolvedAttribute,
	owner *objdef.EntityAttribute, sourcePath string, polymorphic bool, opts *ResolveOptions) []*objdef.ResolvedAttribute {
	switch op.Kind {
	case objdef.OperationKind_ReplaceAsForeignKey:
		var rows [][]string
		if polymorphic {
			for _, a := range atts {
				for _, row := range a.LinkedEntityRows() {
					if !containsRow(rows, row) {
						rows = append(rows, row)
					}
				}
			}
		} else if sourcePath != "" {
			rows = [][]string{{sourcePath, objdef.LastSegment(op.Reference)}}
		}
		fk := &objdef.ResolvedAttribute{
			Name:   op.ReplaceWith.AttributeName,
			Target: op.ReplaceWith,
			Traits: c.foreignKeyTraits(op.ReplaceWith, rows, opts),
			AttCtx: ctx,
		}
		ctx.Attributes = append(ctx.Attributes, fk)
		return []*objdef.ResolvedAttribute{fk}
	case objdef.OperationKind_AddTypeAttribute:
		a := &objdef.ResolvedAttribute{
			Name:   op.NewAttribute.AttributeName,
			Target: op.NewAttribute,
			Traits: c.ResolveTraits(op.NewAttribute, opts),
			AttCtx: ctx,
		}
		ctx.Attributes = append(ctx.Attributes, a)
		return append(atts, a)
	case objdef.OperationKind_ExcludeAttributes:
		var res []*objdef.ResolvedAttribute
		for _, a := range atts {
			if !slices.Contains(op.Names, a.Name) {
				res = append(res, a)
			}
		}
		return res
	case objdef.OperationKind_IncludeAttributes:
		var res []*objdef.ResolvedAttribute
		for _, a := range atts {
			if slices.Contains(op.Names, a.Name) {
				res = append(res, a)
			}
		}
		return res
	case objdef.OperationKind_RenameAttributes:
		ownerName := ""
		if owner != nil {
			ownerName = owner.AttributeName
		}
		res := make([]*objdef.ResolvedAttribute, 0, len(atts))
		for _, a := range atts {
			if len(op.ApplyTo) > 0 && !slices.Contains(op.ApplyTo, a.Name) {
				res = append(res, a)
				continue
			}
			r := a.Copy()
			r.Name = renamed(op.RenameFormat, ownerName, a.Name)
			r.AttCtx = ctx
			ctx.Attributes = append(ctx.Attributes, r)
			res = append(res, r)
		}
		return res
	}
	return atts
}

// Returns attribute traits with is.linkedEntity.identifier listing rows
func (c *Corpus) foreignKeyTraits(att objdef.IObject, rows [][]string, opts *ResolveOptions) *objdef.ResolvedTraitSet {
	set := objdef.NewResolvedTraitSet()
	set.MergeSet(c.ResolveTraits(att, opts))
	set.Merge(objdef.NewResolvedTrait(objdef.TraitName_LinkedEntityIdentifier, nil).
		Set(linkedEntityParam, objdef.ObjectValue(objdef.NewConstantEntity("", linkedEntityShape, rows...))))
	return set
}

// Returns generated attribute round node under ctx, creates it if needed
func generatedRound(ctx *objdef.AttributeContext) *objdef.AttributeContext {
	gen := ctx.Child(objdef.ContextName_GeneratedSet)
	if gen == nil {
		gen = objdef.NewAttributeContext(ctx, objdef.AttributeContextType_GeneratedSet, objdef.ContextName_GeneratedSet, nil)
	}
	round := gen.Child(objdef.ContextName_GeneratedRound)
	if round == nil {
		round = objdef.NewAttributeContext(gen, objdef.AttributeContextType_GeneratedRound, objdef.ContextName_GeneratedRound, nil)
	}
	return round
}

// Returns name of the identifying attribute from is.identifiedBy trait. Empty if none
func identifyingAttribute(traits *objdef.ResolvedTraitSet) string {
	t := traits.Find(objdef.TraitName_IdentifiedBy)
	if t == nil {
		return ""
	}
	return objdef.IdentifyingAttributeName(t.First())
}

func renamed(format, owner, member string) string {
	return strings.NewReplacer(
		renameMember, member,
		renameMemberCapitalized, objdef.Capitalize(member),
		renameOwner, owner,
		renameOwnerCapitalized, objdef.Capitalize(owner),
	).Replace(format)
}

func containsRow(rows [][]string, row []string) bool {
	for _, r := range rows {
		if slices.Equal(r, row) {
			return true
		}
	}
	return false
}
