/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package imports

// Import edge from one document to another.
//
// Empty Moniker means plain (non-aliased) import
type Edge[D comparable] struct {
	Target  D
	Moniker string
}

// Returns imports of the specified document in declaration order.
//
// Edges to documents which are not loaded yet must be omitted
type ImportsFunc[D comparable] func(D) []Edge[D]

// Import priority record of a document.
//
// Built by Prioritize, read-only afterward
type Priorities[D comparable] struct {
	// document → priority index, lower is better, document itself is always 0
	priority map[D]int
	// documents in priority order
	order []D
	// moniker → the one best document
	monikers map[string]D
	circular bool
}
