/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"context"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/objdef"
	"github.com/voedger/schemacorpus/pkg/relationships"
)

func (r objectResolver) FetchDefinition(ref *objdef.Reference) objdef.IObject {
	return r.c.FetchDefinition(ref, r.opts)
}

func (r objectResolver) AbsolutePath(path, relativeTo string) string {
	abs, err := r.c.storage.CreateAbsoluteCorpusPath(path, relativeTo)
	if err != nil {
		return path
	}
	return abs
}

// Calculates relationships of entities. Each path addresses a document (all its entities are used)
// or an entity. Previously calculated relationships of the same entities are replaced
func (c *Corpus) CalculateEntityGraph(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		obj, err := c.FetchObject(ctx, path, "", nil)
		if err != nil {
			return err
		}
		var entities []*objdef.EntityDef
		switch o := obj.(type) {
		case *objdef.Document:
			for _, def := range o.Definitions {
				if e, ok := def.(*objdef.EntityDef); ok {
					entities = append(entities, e)
				}
			}
		case *objdef.EntityDef:
			entities = append(entities, o)
		default:
			err := diag.ErrUnsupportedOperation("%s is %v, not an entity", path, obj.ObjectType())
			c.report(diag.Level_Error, component_EntityGraph, path, err)
			return err
		}
		for _, e := range entities {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.calculateEntityRelationships(e)
		}
	}
	return nil
}

func (c *Corpus) calculateEntityRelationships(e *objdef.EntityDef) {
	opts := NewResolveOptions(e.InDocument())
	re := c.ResolveEntity(e, opts)
	rels := relationships.Extract(objectResolver{c: c, opts: opts}, re)

	from := e.AtCorpusPath()
	for _, r := range c.outgoing[from] {
		c.incoming[r.ToEntity] = withoutSource(c.incoming[r.ToEntity], from)
	}
	c.outgoing[from] = rels
	for to, in := range relationships.Invert(rels) {
		c.incoming[to] = append(c.incoming[to], in...)
	}

	if logger.IsVerbose() {
		logger.Verbose(from, "relationships:", len(rels))
	}
}

// Returns relationships from the entity, calculated by CalculateEntityGraph
func (c *Corpus) FetchOutgoingRelationships(entityPath string) []relationships.Relationship {
	abs, err := c.storage.CreateAbsoluteCorpusPath(entityPath, "")
	if err != nil {
		return nil
	}
	return slices.Clone(c.outgoing[abs])
}

// Returns relationships to the entity, calculated by CalculateEntityGraph
func (c *Corpus) FetchIncomingRelationships(entityPath string) []relationships.Relationship {
	abs, err := c.storage.CreateAbsoluteCorpusPath(entityPath, "")
	if err != nil {
		return nil
	}
	return slices.Clone(c.incoming[abs])
}

func withoutSource(rels []relationships.Relationship, from string) []relationships.Relationship {
	res := make([]relationships.Relationship, 0, len(rels))
	for _, r := range rels {
		if r.FromEntity != from {
			res = append(res, r)
		}
	}
	return res
}
