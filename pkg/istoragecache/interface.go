/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package istoragecache

import "github.com/voedger/schemacorpus/pkg/istorage"

// Adapter which caches content of the underlying adapter
type ICachedAdapter interface {
	istorage.IStorageAdapter

	// Returns number of reads served from cache and from the underlying adapter
	Stats() (hits, misses uint64)

	// Drops all cached content
	Reset()
}
