/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pipeline

import "context"

// Wires operators into pipeline, each operator runs in its own goroutine.
// Workpieces are processed one by one, SendSync blocks until the last operator finishes
func NewSyncPipeline(ctx context.Context, name string, first *WiredOperator, others ...*WiredOperator) ISyncPipeline {
	return newSyncPipeline(ctx, name, first, others...)
}

func WireSyncOperator(name string, op ISyncOperator) *WiredOperator {
	return &WiredOperator{
		name:     name,
		Stdout:   make(chan interface{}, 1),
		Operator: op,
	}
}

func WireFunc(name string, f SyncOperatorFunc) *WiredOperator {
	return WireSyncOperator(name, implSyncOperatorFunc{f: f})
}
