/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package imports

// Builds import priority record for root document.
//
// Documents are numbered breadth first in declaration order, root gets 0,
// a document reachable by several paths keeps its first number.
// Moniker of root's own import binds first; monikers of documents imported
// without moniker are re-exported to root if not bound yet
func Prioritize[D comparable](root D, importsOf ImportsFunc[D]) *Priorities[D] {
	return prioritize(root, importsOf)
}
