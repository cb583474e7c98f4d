/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache

import (
	"github.com/voedger/schemacorpus/pkg/objcache/internal/hashicorp"
	"github.com/voedger/schemacorpus/pkg/objcache/internal/imcache"
)

// Creates and return new object cache with K key type and V value type.
//
// Positive size limits cache by LRU eviction, optional onEvicted cb is called then some value evicted from cache.
// Non-positive size means unbounded cache, onEvicted is called then value is replaced or removed
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	if size <= 0 {
		return imcache.New[K, V](onEvicted)
	}
	return hashicorp.New[K, V](size, onEvicted)
}
