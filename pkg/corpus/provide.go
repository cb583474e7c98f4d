/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/istorage"
	"github.com/voedger/schemacorpus/pkg/objdef"
	"github.com/voedger/schemacorpus/pkg/persistence"
	"github.com/voedger/schemacorpus/pkg/relationships"
	"github.com/voedger/schemacorpus/pkg/symbols"
)

func DefaultParams() Params {
	return Params{
		DefaultNamespace:  istorage.DefaultNamespace,
		StrictValidation:  true,
		ResolvedCacheSize: defaultResolvedCacheSize,
		MaxParallelLoads:  defaultMaxParallelLoads,
	}
}

// Creates empty corpus. Nil sink means diagnostics are written to log
func New(storage istorage.IStorage, p persistence.IPersistence, sink diag.IEventSink, params Params) *Corpus {
	if sink == nil {
		sink = diag.LoggerSink()
	}
	if params.DefaultNamespace == "" {
		params.DefaultNamespace = storage.DefaultNamespace()
	}
	if params.MaxParallelLoads <= 0 {
		params.MaxParallelLoads = defaultMaxParallelLoads
	}
	c := &Corpus{
		params:      params,
		storage:     storage,
		persistence: p,
		sink:        sink,
		registry:    newRegistry(),
		symbols:     symbols.NewTable[*objdef.Document](),
		defRefs:     symbols.NewDefinitionRefs(),
		outgoing:    make(map[string][]relationships.Relationship),
		incoming:    make(map[string][]relationships.Relationship),
	}
	c.resetCaches()
	return c
}

// Creates resolution options for wrtDoc
func NewResolveOptions(wrtDoc *objdef.Document, directives ...string) *ResolveOptions {
	return &ResolveOptions{
		WrtDoc:       wrtDoc,
		Directives:   objdef.NewDirectives(directives...),
		SymbolRefSet: symbols.NewSet(),
	}
}
