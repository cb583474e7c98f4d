/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache

// Objects cache
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value otherwise
	Get(K) (value V, ok bool)

	// Puts value with key
	Put(K, V)

	// Removes value by key, if exists
	Remove(K)

	// Returns number of cached values
	Len() int
}
