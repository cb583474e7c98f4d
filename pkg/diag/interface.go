/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package diag

// Receives diagnostic events.
//
// Expected failures (unresolved symbols, duplicates, kind mismatches) are
// reported here instead of being returned as errors
type IEventSink interface {
	Event(e Event)
}
