/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pipeline

import (
	"context"
	"time"
)

type WorkpieceContext struct {
	pipelineName   string
	pipelineStruct string
}

func (c WorkpieceContext) GetPipelineName() string {
	return c.pipelineName
}

func (c WorkpieceContext) GetPipelineStruct() string {
	return c.pipelineStruct
}

func NewWorkpieceContext(pName, pStruct string) WorkpieceContext {
	return WorkpieceContext{
		pipelineName:   pName,
		pipelineStruct: pStruct,
	}
}

type SyncPipeline struct {
	name string
	wctx IWorkpieceContext
	ctx  context.Context
	// stdin created by pipeline
	stdin chan interface{}
	// stdout points to the Stdout of the last operator
	stdout    chan interface{}
	operators []*WiredOperator
}

type WiredOperator struct {
	name     string
	wctx     IWorkpieceContext
	Stdin    chan interface{} // Stdin is provided by the builder
	Stdout   chan interface{} // Stdout is owned by WiredOperator
	Operator ISyncOperator
	ctx      context.Context
	// Duration of the last DoSync call
	Elapsed time.Duration
}

// Operator as a function
type SyncOperatorFunc func(ctx context.Context, work interface{}) (err error)

type implSyncOperatorFunc struct {
	NOOP
	f SyncOperatorFunc
}

// Operator which does nothing. Embed it to implement only the needed methods
type NOOP struct{}
