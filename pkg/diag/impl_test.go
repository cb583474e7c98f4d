/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	require := require.New(t)

	err := ErrUnresolvedSymbol("unable to resolve the reference '%s' to a known object", "Customer")
	require.ErrorIs(err, ErrUnresolvedSymbolError)
	require.NotErrorIs(err, ErrKindMismatchError)
	require.Equal("unresolved symbol: unable to resolve the reference 'Customer' to a known object", err.Error())

	msg := "no args %s"
	err = ErrDuplicateDeclaration(msg)
	require.Equal("duplicate declaration: no args %s", err.Error())
}

type sinkCounter int

func (s *sinkCounter) Event(Event) { *s++ }

func TestCollector(t *testing.T) {
	require := require.New(t)

	next := new(sinkCounter)
	c := NewCollector(next)

	c.Event(Event{Level: Level_Error, Component: "declare", Path: "local:/a.cdm.yaml/X", Err: ErrDuplicateDeclaration("X")})
	c.Event(Event{Level: Level_Warning, Component: "resolve-references", Err: ErrUnresolvedSymbol("Y")})
	c.Event(Event{Level: Level_Error, Component: "resolve-references", Err: ErrUnresolvedSymbol("Z")})

	require.Len(c.Events(), 3)
	require.Equal(3, int(*next))
	require.Len(c.Filter(ErrUnresolvedSymbolError), 2)
	require.Len(c.Filter(ErrInvalidMonikerError), 0)
	require.Equal(2, c.Count(Level_Error))
	require.Equal(1, c.Count(Level_Warning))

	require.Equal("error [declare] duplicate declaration: X | local:/a.cdm.yaml/X", c.Events()[0].String())
	require.Equal("warning [resolve-references] unresolved symbol: Y", c.Events()[1].String())

	c.Reset()
	require.Empty(c.Events())
}

func TestLoggerSink(t *testing.T) {
	require := require.New(t)
	s := LoggerSink()
	require.NotPanics(func() {
		for l := Level(0); l < Level_Count; l++ {
			s.Event(Event{Level: l, Component: "test", Err: errors.New("message")})
		}
	})
	NopSink().Event(Event{})
}
