/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"sync"
	"sync/atomic"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/istorage"
	"github.com/voedger/schemacorpus/pkg/objcache"
	"github.com/voedger/schemacorpus/pkg/objdef"
	"github.com/voedger/schemacorpus/pkg/persistence"
	"github.com/voedger/schemacorpus/pkg/relationships"
	"github.com/voedger/schemacorpus/pkg/symbols"
)

type Params struct {
	// Namespace of paths without namespace
	DefaultNamespace string
	// Resolve references and trait arguments while indexing
	StrictValidation bool
	// Report unresolved references as warnings
	ShallowValidation bool
	// Size of resolved traits and entities caches, non-positive means unbounded
	ResolvedCacheSize int
	// Maximum number of documents loaded concurrently
	MaxParallelLoads int
	// Maximum moniker recursion depth, zero means number of monikers in the symbol
	MaxMonikerDepth int
}

// Schema corpus: documents, symbols and resolution caches.
//
// Loading imports is concurrent internally, other methods must not be called concurrently
type Corpus struct {
	params      Params
	storage     istorage.IStorage
	persistence persistence.IPersistence
	sink        diag.IEventSink
	errors      atomic.Int64

	idMu   sync.Mutex
	lastID objdef.ObjectID

	registry *registry
	symbols  *symbols.Table[*objdef.Document]
	defRefs  *symbols.DefinitionRefs

	traitsCache   objcache.ICache[string, *objdef.ResolvedTraitSet]
	entitiesCache objcache.ICache[string, *objdef.ResolvedEntity]

	outgoing map[string][]relationships.Relationship
	incoming map[string][]relationships.Relationship
}

// Document registry, keys are case folded corpus paths
type registry struct {
	mu    sync.RWMutex
	docs  map[string]*objdef.Document
	order []*objdef.Document
}

// Per call resolution state
type ResolveOptions struct {
	// Document whose imports break ties between several definitions of a symbol
	WrtDoc     *objdef.Document
	Directives objdef.Directives
	// Moniker used by the last moniker qualified resolution
	FromMoniker       string
	ShallowValidation bool
	// Symbols the resolution depends on
	SymbolRefSet symbols.Set

	// definitions being resolved, shared by copies
	inProgress map[string]bool
}

// Result of symbol to documents lookup
type symbolDocs struct {
	symbol  string
	wrtDoc  *objdef.Document
	fromDoc *objdef.Document
	docs    []*objdef.Document
}

// Work of the indexing pipeline
type indexWork struct {
	docs   []*objdef.Document
	opts   *ResolveOptions
	strict bool
}

// Trait scope of trait arguments resolution
type traitScope struct {
	ref    *objdef.Reference
	trait  *objdef.TraitDef
	params []*objdef.ParameterDef
	next   int
	bound  map[string]bool
}

type loadResult struct {
	path string
	doc  *objdef.Document
	err  error
}

// Relationship resolver bound to resolution options
type objectResolver struct {
	c    *Corpus
	opts *ResolveOptions
}
