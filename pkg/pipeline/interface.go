/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pipeline

import "context"

// Operator processes the workpiece synchronously
type ISyncOperator interface {
	DoSync(ctx context.Context, work interface{}) (err error)
	Close()
}

// Pipeline passes each workpiece through all its operators in wiring order
type ISyncPipeline interface {
	// Blocks until all operators processed the work or one of them failed
	SendSync(work interface{}) (err error)
	Close()
}

// Error produced by operator, keeps the workpiece
type IErrorPipeline interface {
	error
	GetWork() interface{}
	GetOpName() string
}

type IWorkpieceContext interface {
	GetPipelineName() string
	GetPipelineStruct() string
}
