/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/objcache"
	"github.com/voedger/schemacorpus/pkg/objdef"
)

// Returns next corpus-wide object identity
func (c *Corpus) nextID() objdef.ObjectID {
	c.idMu.Lock()
	c.lastID++
	id := c.lastID
	c.idMu.Unlock()
	return id
}

func (c *Corpus) report(level diag.Level, component string, path string, err error) {
	if level == diag.Level_Error {
		c.errors.Add(1)
	}
	c.sink.Event(diag.Event{Level: level, Component: component, Path: path, Err: err})
}

// Unresolved references are errors unless shallow validation is requested
func (c *Corpus) unresolvedLevel(opts *ResolveOptions) diag.Level {
	if c.params.ShallowValidation || (opts != nil && opts.ShallowValidation) {
		return diag.Level_Warning
	}
	return diag.Level_Error
}

// Drops resolved traits and entities caches and definition reference symbols
func (c *Corpus) resetCaches() {
	c.traitsCache = objcache.New[string, *objdef.ResolvedTraitSet](c.params.ResolvedCacheSize, nil)
	c.entitiesCache = objcache.New[string, *objdef.ResolvedEntity](c.params.ResolvedCacheSize, nil)
	c.defRefs.Clear()
}

// Returns options with WrtDoc and symbol reference set. Options are copied if anything had to be set
func (o *ResolveOptions) withWrtDoc(doc *objdef.Document) *ResolveOptions {
	if o == nil {
		return NewResolveOptions(doc)
	}
	if o.WrtDoc != nil && o.SymbolRefSet != nil {
		return o
	}
	c := o.Copy()
	if c.WrtDoc == nil {
		c.WrtDoc = doc
	}
	return c
}

// Returns copy which shares symbol reference set and definitions in progress
func (o *ResolveOptions) Copy() *ResolveOptions {
	c := *o
	if c.SymbolRefSet == nil {
		c.SymbolRefSet = make(map[string]struct{})
	}
	return &c
}

// Returns copy with its own empty symbol reference set
func (o *ResolveOptions) child() *ResolveOptions {
	c := *o
	c.SymbolRefSet = make(map[string]struct{})
	if c.inProgress == nil {
		c.inProgress = make(map[string]bool)
		o.inProgress = c.inProgress
	}
	return &c
}

// Marks definition as being resolved. Returns false if it is already being resolved
func (o *ResolveOptions) enter(key string) bool {
	if o.inProgress[key] {
		return false
	}
	o.inProgress[key] = true
	return true
}

func (o *ResolveOptions) leave(key string) {
	delete(o.inProgress, key)
}

func (o *ResolveOptions) addSymbol(symbol string) {
	if o.SymbolRefSet != nil {
		o.SymbolRefSet.Add(symbol)
	}
}
