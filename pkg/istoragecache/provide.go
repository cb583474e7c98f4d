/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package istoragecache

import "github.com/voedger/schemacorpus/pkg/istorage"

// Wraps adapter by content cache of maxBytes size.
//
// Cached content is served only while adapter reports the same modification time
func Provide(maxBytes int, adapter istorage.IStorageAdapter) ICachedAdapter {
	return newCachedAdapter(maxBytes, adapter)
}
