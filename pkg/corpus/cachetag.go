/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/exp/slices"

	"github.com/voedger/schemacorpus/pkg/objdef"
	"github.com/voedger/schemacorpus/pkg/symbols"
)

// Returns key of definition reference symbols
func definitionKey(def objdef.IObject, kind string) string {
	return strconv.FormatUint(uint64(def.ID()), 10) + cacheTagSeparator + kind
}

// Merges symbols into the set the definition resolution of kind depends on
func (c *Corpus) RegisterDefinitionReferenceSymbols(def objdef.IObject, kind string, set symbols.Set) {
	c.defRefs.Register(definitionKey(def, kind), set)
}

func (c *Corpus) UnregisterDefinitionReferenceSymbols(def objdef.IObject, kind string) {
	c.defRefs.Unregister(definitionKey(def, kind))
}

// Returns symbols registered for the definition resolution of kind
func (c *Corpus) DefinitionReferenceSymbols(def objdef.IObject, kind string) (symbols.Set, bool) {
	return c.defRefs.Lookup(definitionKey(def, kind))
}

// Returns key of definition resolution of kind in the context of opts.WrtDoc.
//
// Key is "{docIDs}-{kind}-{id}-({directives})[-{extra}]", where docIDs are identities of
// the best documents of the symbols the definition depends on and which have several
// declaring documents. If useNameNotID is true and there are no such symbols, corpus path
// is used instead of identity. Returns empty string if definition has no identity
func (c *Corpus) CacheTag(opts *ResolveOptions, def objdef.IObject, kind string, extra string, useNameNotID bool) string {
	if def == nil || def.ID() == 0 || def.InDocument() == nil {
		return ""
	}
	opts = opts.withWrtDoc(def.InDocument())

	objDef := def
	if ref, ok := def.(*objdef.Reference); ok {
		if d := c.FetchDefinition(ref, opts); d != nil {
			objDef = d
		}
	}

	refs, ok := c.DefinitionReferenceSymbols(objDef, kind)
	if !ok && def.Name() != "" {
		// definition depends on itself at least
		refs = symbols.NewSet(def.Name())
		c.RegisterDefinitionReferenceSymbols(def, kind, refs)
	}

	var docIDs []uint64
	if wrtDoc := opts.WrtDoc; wrtDoc != nil && len(refs) > 0 {
		prio := c.priorities(wrtDoc)
		for _, symbol := range refs.Sorted() {
			res := c.docsForSymbol(opts, wrtDoc, def.InDocument(), symbol, c.monikerDepth(symbol))
			if len(res.docs) < 2 {
				continue
			}
			if best, ok := prio.Best(res.docs); ok && !slices.Contains(docIDs, uint64(best.ID())) {
				docIDs = append(docIDs, uint64(best.ID()))
			}
		}
	}
	slices.Sort(docIDs)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, id := range docIDs {
		if i > 0 {
			_, _ = buf.WriteString(cacheTagSeparator)
		}
		_, _ = buf.WriteString(strconv.FormatUint(id, 10))
	}
	_, _ = buf.WriteString(cacheTagSeparator + kind + cacheTagSeparator)
	if useNameNotID && len(docIDs) == 0 {
		_, _ = buf.WriteString(def.AtCorpusPath())
	} else {
		_, _ = buf.WriteString(strconv.FormatUint(uint64(def.ID()), 10))
	}
	_, _ = buf.WriteString(cacheTagSeparator + "(" + opts.Directives.Tag() + ")")
	if extra != "" {
		_, _ = buf.WriteString(cacheTagSeparator + extra)
	}
	return buf.String()
}
