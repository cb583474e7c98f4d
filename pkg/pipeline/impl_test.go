/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type workpiece struct {
	slots map[string]interface{}
}

type closeCounter struct {
	NOOP
	closed *int
}

func (c closeCounter) Close() { *c.closed++ }

func TestBasicUsage_SyncPipeline(t *testing.T) {
	require := require.New(t)

	closed := 0
	p := NewSyncPipeline(context.Background(), "noname",
		WireFunc("set name", func(_ context.Context, work interface{}) error {
			work.(workpiece).slots["name"] = "michael"
			return nil
		}),
		WireFunc("set age", func(_ context.Context, work interface{}) error {
			work.(workpiece).slots["age"] = "39"
			return nil
		}),
		WireSyncOperator("noop", closeCounter{closed: &closed}),
	)

	work := workpiece{slots: map[string]interface{}{}}
	require.NoError(p.SendSync(work))
	require.Equal("michael", work.slots["name"])
	require.Equal("39", work.slots["age"])

	p.Close()
	require.Equal(1, closed)
}

func TestSyncPipeline_Error(t *testing.T) {
	require := require.New(t)

	testErr := errors.New("test error")
	var calls []string

	p := NewSyncPipeline(context.Background(), "failing",
		WireFunc("first", func(_ context.Context, work interface{}) error {
			calls = append(calls, "first")
			return nil
		}),
		WireFunc("second", func(_ context.Context, work interface{}) error {
			calls = append(calls, "second")
			return testErr
		}),
		WireFunc("third", func(_ context.Context, work interface{}) error {
			calls = append(calls, "third")
			return nil
		}),
	)
	defer p.Close()

	err := p.SendSync(42)
	require.ErrorIs(err, testErr)
	require.Equal("[second/doSync] test error", err.Error())
	require.Equal([]string{"first", "second"}, calls, "operators after failed one are not called")

	var pErr IErrorPipeline
	require.ErrorAs(err, &pErr)
	require.Equal(42, pErr.GetWork())
	require.Equal("second", pErr.GetOpName())

	t.Run("pipeline is reusable after error", func(t *testing.T) {
		calls = nil
		require.ErrorIs(p.SendSync(43), testErr)
		require.Equal([]string{"first", "second"}, calls)
	})
}

func TestSyncPipeline_CanceledContext(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	p := NewSyncPipeline(ctx, "canceled", WireSyncOperator("noop", NOOP{}))
	defer p.Close()

	cancel()
	require.ErrorIs(p.SendSync(1), context.Canceled)
}

func TestSyncPipeline_NilWorkPanics(t *testing.T) {
	wo := WireSyncOperator("noop", NOOP{})
	wo.wctx = NewWorkpieceContext("p", "operator: noop")
	wo.Stdin = make(chan interface{}, 1)
	wo.Stdin <- nil
	require.Panics(t, func() { pullerSync(wo) })
}
