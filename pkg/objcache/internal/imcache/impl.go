/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imcache

import "github.com/erni27/imcache"

// Unbounded cache implemented by imcache
type Cache[K comparable, V any] struct {
	cache     *imcache.Cache[K, V]
	onEvicted func(K, V)
}

func New[K comparable, V any](onEvicted func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		cache:     imcache.New[K, V](),
		onEvicted: onEvicted,
	}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.cache.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	if c.onEvicted != nil {
		if old, ok := c.cache.Get(key); ok {
			c.onEvicted(key, old)
		}
	}
	c.cache.Set(key, value, imcache.WithNoExpiration())
}

func (c *Cache[K, V]) Remove(key K) {
	if c.onEvicted != nil {
		if old, ok := c.cache.Get(key); ok {
			c.onEvicted(key, old)
		}
	}
	c.cache.Remove(key)
}

func (c *Cache[K, V]) Len() int {
	return c.cache.Len()
}
