/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package imports

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func prioritize[D comparable](root D, importsOf ImportsFunc[D]) *Priorities[D] {
	p := &Priorities[D]{
		priority: map[D]int{root: 0},
		order:    []D{root},
		monikers: make(map[string]D),
	}

	var zero D

	// breadth first over all imports, first assigned index wins
	queue := []D{root}
	for len(queue) > 0 {
		doc := queue[0]
		queue = queue[1:]
		for _, e := range importsOf(doc) {
			if e.Target == zero {
				continue
			}
			if e.Target == root {
				p.circular = true
			}
			if _, ok := p.priority[e.Target]; ok {
				continue
			}
			p.priority[e.Target] = len(p.order)
			p.order = append(p.order, e.Target)
			queue = append(queue, e.Target)
		}
	}

	// monikers: own aliased imports first, then re-exported by plain imports
	visited := map[D]bool{root: true}
	queue = []D{root}
	for len(queue) > 0 {
		doc := queue[0]
		queue = queue[1:]
		edges := importsOf(doc)
		for _, e := range edges {
			if e.Target == zero || e.Moniker == "" {
				continue
			}
			if _, ok := p.monikers[e.Moniker]; !ok {
				p.monikers[e.Moniker] = e.Target
			}
		}
		for _, e := range edges {
			if e.Target == zero || e.Moniker != "" || visited[e.Target] {
				continue
			}
			visited[e.Target] = true
			queue = append(queue, e.Target)
		}
	}

	return p
}

// Returns priority index of the document. Returns false if document is not reachable
func (p *Priorities[D]) Index(doc D) (int, bool) {
	i, ok := p.priority[doc]
	return i, ok
}

// Returns reachable documents, the root document first
func (p *Priorities[D]) Order() []D {
	return slices.Clone(p.order)
}

// Returns number of reachable documents including the root one
func (p *Priorities[D]) Len() int {
	return len(p.order)
}

// Returns document bound to the moniker
func (p *Priorities[D]) Moniker(moniker string) (doc D, ok bool) {
	doc, ok = p.monikers[moniker]
	return doc, ok
}

// Returns all known monikers, sorted
func (p *Priorities[D]) Monikers() []string {
	mm := maps.Keys(p.monikers)
	slices.Sort(mm)
	return mm
}

// Returns true if the root document is reachable from its own imports
func (p *Priorities[D]) HasCircularImport() bool {
	return p.circular
}

// Returns the candidate with the lowest priority index.
//
// Candidates which are not reachable are ignored. Returns false if no candidate is reachable
func (p *Priorities[D]) Best(candidates []D) (best D, ok bool) {
	bestIdx := math.MaxInt
	for _, c := range candidates {
		idx, found := p.priority[c]
		if !found || idx >= bestIdx {
			continue
		}
		bestIdx, best, ok = idx, c, true
		if idx == 0 {
			break
		}
	}
	return best, ok
}
