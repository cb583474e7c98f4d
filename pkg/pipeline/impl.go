/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func pipelinePanic(msg string, operatorName string, context IWorkpieceContext) {
	panic(fmt.Sprintf("critical error in operator '%s': %s. Pipeline '%s' [%s]", operatorName, msg, context.GetPipelineName(), context.GetPipelineStruct()))
}

func newSyncPipeline(ctx context.Context, name string, first *WiredOperator, others ...*WiredOperator) *SyncPipeline {
	var pstruct strings.Builder
	pipeline := &SyncPipeline{
		ctx:       ctx,
		name:      name,
		stdin:     make(chan interface{}, 1),
		operators: []*WiredOperator{first},
	}
	first.Stdin = pipeline.stdin
	pstruct.WriteString(first.String())
	last := first

	for _, next := range others {
		next.Stdin = last.Stdout
		pipeline.operators = append(pipeline.operators, next)
		last = next
		pstruct.WriteString(", ")
		pstruct.WriteString(next.String())
	}
	pipeline.stdout = last.Stdout
	pipeline.wctx = NewWorkpieceContext(name, pstruct.String())

	for _, op := range pipeline.operators {
		op.ctx = ctx
		op.wctx = pipeline.wctx
	}
	for _, op := range pipeline.operators {
		go pullerSync(op)
	}
	return pipeline
}

func (p *SyncPipeline) SendSync(work interface{}) (err error) {
	if p.ctx.Err() != nil {
		return p.ctx.Err()
	}
	p.stdin <- work
	outWork := <-p.stdout
	if err, ok := outWork.(error); ok {
		return err
	}
	return nil
}

func (p *SyncPipeline) Close() {
	close(p.stdin)
	for range p.stdout {
	}
}

// Returns operators in wiring order
func (p *SyncPipeline) Operators() []*WiredOperator {
	return p.operators
}

func pullerSync(wo *WiredOperator) {
	for work := range wo.Stdin {
		if work == nil {
			pipelinePanic("nil in puller_sync stdin", wo.name, wo.wctx)
		}
		if err, ok := work.(IErrorPipeline); ok {
			wo.Stdout <- err
			continue
		}
		if err := wo.doSync(work); err != nil {
			wo.Stdout <- err
			continue
		}
		wo.Stdout <- work
	}
	wo.Operator.Close()
	close(wo.Stdout)
}

func (wo *WiredOperator) String() string {
	return "operator: " + wo.name
}

func (wo *WiredOperator) Name() string {
	return wo.name
}

func (wo *WiredOperator) NewError(err error, work interface{}, place string) IErrorPipeline {
	return errPipeline{
		err:    fmt.Errorf("[%s/%s] %w", wo.name, place, err),
		work:   work,
		opName: wo.name,
	}
}

func (wo *WiredOperator) doSync(work interface{}) IErrorPipeline {
	start := time.Now()
	e := wo.Operator.DoSync(wo.ctx, work)
	wo.Elapsed = time.Since(start)
	if e != nil {
		return wo.NewError(e, work, placeDoSync)
	}
	return nil
}

func (f implSyncOperatorFunc) DoSync(ctx context.Context, work interface{}) (err error) {
	return f.f(ctx, work)
}

func (n NOOP) DoSync(context.Context, interface{}) (err error) { return nil }

func (n NOOP) Close() {}
