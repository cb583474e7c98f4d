/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package relationships

import "github.com/voedger/schemacorpus/pkg/objdef"

// Returns outgoing relationships of the resolved entity.
//
// Relationships are returned in the order they are met in the attribute context tree,
// repeated relationships are returned once
func Extract(resolver IObjectResolver, entity *objdef.ResolvedEntity) []Relationship {
	if entity == nil || entity.AttCtx == nil || entity.Entity == nil {
		return nil
	}
	x := &extractor{
		resolver:   resolver,
		fromEntity: entity.Entity.AtCorpusPath(),
		seen:       make(map[Relationship]bool),
	}
	if doc := entity.Entity.InDocument(); doc != nil && doc.Folder != nil {
		x.relativeTo = doc.Folder.AtCorpusPath()
	}
	x.walk(entity.AttCtx, nil, false, false, nil)
	return x.rels
}

// Returns relationships which target entities, built by inverting outgoing ones
func Invert(outgoing []Relationship) map[string][]Relationship {
	incoming := make(map[string][]Relationship)
	for _, r := range outgoing {
		incoming[r.ToEntity] = append(incoming[r.ToEntity], r)
	}
	return incoming
}
