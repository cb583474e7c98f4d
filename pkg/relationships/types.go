/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package relationships

import "fmt"

// Entity to entity relationship: foreign key attribute of one entity referencing
// identifying attribute of another
type Relationship struct {
	FromEntity    string
	FromAttribute string
	ToEntity      string
	ToAttribute   string
	// Optional name of the relationship
	Name string
}

func (r Relationship) String() string {
	s := fmt.Sprintf("(%s, %s) → (%s, %s)", r.FromEntity, r.FromAttribute, r.ToEntity, r.ToAttribute)
	if r.Name != "" {
		s += " " + r.Name
	}
	return s
}

type extractor struct {
	resolver   IObjectResolver
	fromEntity string
	relativeTo string
	rels       []Relationship
	seen       map[Relationship]bool
}
