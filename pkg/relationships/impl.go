/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package relationships

import (
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/schemacorpus/pkg/objdef"
)

// Walks children of node.
//
// genSet is the nearest generated attribute set above node, polymorphic is true while
// the branch is fed by polymorphic projection source, inSource is true below a projection,
// fromAtts are attributes of the projection generated set collected on the way down
func (x *extractor) walk(node, genSet *objdef.AttributeContext, polymorphic, inSource bool, fromAtts []*objdef.ResolvedAttribute) {
	if newGenSet := node.Child(objdef.ContextName_GeneratedSet); newGenSet != nil {
		genSet = newGenSet
	}

	for _, child := range node.Contents {
		isEntityRef := false
		childInSource := inSource
		if ref := child.Reference(objdef.ObjectType_EntityRef); ref != nil {
			switch target := x.resolver.FetchDefinition(ref).(type) {
			case *objdef.ProjectionDef:
				if genSet != nil && fromAtts == nil {
					fromAtts = generatedAttributes(genSet, nil)
				}
				x.projectionRule(fromAtts)
				polymorphic = target.IsPolymorphicSource()
				childInSource = true
			case nil:
				if logger.IsVerbose() {
					logger.Verbose("unresolved entity reference", ref.Name(), "at", child.AtPath())
				}
			default:
				isEntityRef = true
				// foreign keys of projection source entities are replaced by the projection output
				if !polymorphic && !inSource {
					x.entityRefRule(target, child, genSet)
				}
			}
		}

		x.walk(child, genSet, polymorphic, childInSource, fromAtts)

		// non-projection leaf of polymorphic source is done, siblings are not affected
		if polymorphic && isEntityRef {
			polymorphic = false
		}
	}
}

// Emits relationship per row of is.linkedEntity.identifier of every attribute
func (x *extractor) projectionRule(fromAtts []*objdef.ResolvedAttribute) {
	for _, att := range fromAtts {
		x.addRows(att.Name, att.LinkedEntityRows())
	}
}

// Emits relationships of the foreign key generated for plain entity reference
func (x *extractor) entityRefRule(target objdef.IObject, child, genSet *objdef.AttributeContext) {
	idTraits := 0
	for _, t := range child.ExhibitsTraits.All() {
		if t.TraitName == objdef.TraitName_IdentifiedBy && t.First().Kind() != objdef.RefValueKind_Null {
			idTraits++
		}
	}
	if idTraits != 1 {
		if logger.IsVerbose() {
			logger.Verbose("entity", target.AtCorpusPath(), "must have exactly one identifying attribute, has", idTraits)
		}
		return
	}

	fk := addedAttributeIdentity(genSet)
	if fk == nil {
		return
	}
	x.addRows(fk.Name, fk.LinkedEntityRows())
}

func (x *extractor) addRows(fromAttribute string, rows [][]string) {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		r := Relationship{
			FromEntity:    x.fromEntity,
			FromAttribute: fromAttribute,
			ToEntity:      x.resolver.AbsolutePath(row[0], x.relativeTo),
			ToAttribute:   row[1],
		}
		if len(row) > 2 {
			r.Name = row[2]
		}
		if x.seen[r] {
			continue
		}
		x.seen[r] = true
		x.rels = append(x.rels, r)
	}
}

// Returns first attribute lodged at added attribute identity node under ctx
func addedAttributeIdentity(ctx *objdef.AttributeContext) *objdef.ResolvedAttribute {
	if ctx == nil {
		return nil
	}
	for _, c := range ctx.Contents {
		if c.Type == objdef.AttributeContextType_AddedAttributeIdentity && len(c.Attributes) > 0 {
			return c.Attributes[0]
		}
		if a := addedAttributeIdentity(c); a != nil {
			return a
		}
	}
	return nil
}

// Returns attributes lodged under the generated set, depth first
func generatedAttributes(ctx *objdef.AttributeContext, atts []*objdef.ResolvedAttribute) []*objdef.ResolvedAttribute {
	atts = append(atts, ctx.Attributes...)
	for _, c := range ctx.Contents {
		atts = generatedAttributes(c, atts)
	}
	return atts
}
