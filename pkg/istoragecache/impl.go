/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package istoragecache

import (
	"context"
	"encoding/binary"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/fastcache"

	"github.com/voedger/schemacorpus/pkg/istorage"
)

type cachedAdapter struct {
	cache   *fastcache.Cache
	adapter istorage.IStorageAdapter

	hits   atomic.Uint64
	misses atomic.Uint64
}

func newCachedAdapter(maxBytes int, adapter istorage.IStorageAdapter) *cachedAdapter {
	return &cachedAdapter{
		cache:   fastcache.New(maxBytes),
		adapter: adapter,
	}
}

// Returns cached content if it was cached with the current modification time
func (c *cachedAdapter) Read(ctx context.Context, path string) ([]byte, error) {
	modified, err := c.adapter.LastModified(ctx, path)
	if err != nil {
		return nil, err
	}
	stamp := modified.UnixNano()

	key := []byte(path)
	if v := c.cache.GetBig(nil, key); len(v) >= modifiedSize {
		if int64(binary.BigEndian.Uint64(v[:modifiedSize])) == stamp {
			c.hits.Add(1)
			return v[modifiedSize:], nil
		}
	}
	c.misses.Add(1)

	content, err := c.adapter.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	v := make([]byte, modifiedSize, modifiedSize+len(content))
	binary.BigEndian.PutUint64(v, uint64(stamp))
	v = append(v, content...)
	c.cache.SetBig(key, v)

	return content, nil
}

func (c *cachedAdapter) LastModified(ctx context.Context, path string) (time.Time, error) {
	return c.adapter.LastModified(ctx, path)
}

func (c *cachedAdapter) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *cachedAdapter) Reset() {
	c.cache.Reset()
}
