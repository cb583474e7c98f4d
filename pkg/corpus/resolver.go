/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"strings"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/imports"
	"github.com/voedger/schemacorpus/pkg/objdef"
)

// Returns import priorities of the document, computes them if needed
func (c *Corpus) priorities(doc *objdef.Document) *imports.Priorities[*objdef.Document] {
	p := doc.ImportPriorities()
	if p == nil {
		p = imports.Prioritize(doc, (*objdef.Document).ImportEdges)
		doc.SetImportPriorities(p)
	}
	return p
}

// Resolves symbol declared in fromDoc or in documents it imports.
//
// Ties are broken by import priorities of opts.WrtDoc, fromDoc is used if WrtDoc is nil.
// Returns nil if symbol is not found or found object is not acceptable as expected kind.
// Kind mismatch and invalid monikers are reported, not found symbols are left to caller
func (c *Corpus) ResolveSymbol(opts *ResolveOptions, fromDoc *objdef.Document, symbol string, expected objdef.ObjectType, retry bool) objdef.IObject {
	obj, _ := c.resolveSymbol(opts, fromDoc, symbol, expected, retry)
	return obj
}

// Returns false if symbol is not found. Returns nil and true if found object kind is not expected
func (c *Corpus) resolveSymbol(opts *ResolveOptions, fromDoc *objdef.Document, symbol string, expected objdef.ObjectType, retry bool) (objdef.IObject, bool) {
	if symbol == "" || fromDoc == nil {
		return nil, false
	}
	opts = opts.withWrtDoc(fromDoc)

	res := c.docsForSymbol(opts, opts.WrtDoc, fromDoc, symbol, c.monikerDepth(symbol))
	if len(res.docs) == 0 {
		return nil, false
	}

	best, ok := c.priorities(res.wrtDoc).Best(res.docs)
	if !ok {
		return nil, false
	}

	found, ok := best.Declared(res.symbol)
	if !ok {
		if retry && best != fromDoc {
			return c.resolveSymbol(opts, best, symbol, expected, false)
		}
		return nil, false
	}

	if !expected.Accepts(found.ObjectType()) {
		c.report(diag.Level_Error, component_ResolveSymbol, fromDoc.AtCorpusPath(),
			diag.ErrKindMismatch("%s: expected %v, found %v", symbol, expected, found.ObjectType()))
		return nil, true
	}

	opts.addSymbol(symbol)
	return found, true
}

// Returns maximum moniker recursion depth for symbol
func (c *Corpus) monikerDepth(symbol string) int {
	if c.params.MaxMonikerDepth > 0 {
		return c.params.MaxMonikerDepth
	}
	return strings.Count(symbol, symbolSeparator) + 1
}

// Returns documents which may declare symbol, moniker qualified symbols are peeled.
//
// Moniker is looked up in fromDoc, then in wrtDoc. Documents found through moniker are
// restricted to those reachable from the moniker document
func (c *Corpus) docsForSymbol(opts *ResolveOptions, wrtDoc, fromDoc *objdef.Document, symbol string, depth int) symbolDocs {
	res := symbolDocs{symbol: symbol, wrtDoc: wrtDoc, fromDoc: fromDoc}
	if res.docs = c.symbols.Lookup(symbol); len(res.docs) > 0 {
		return res
	}

	prefixEnd := strings.Index(symbol, symbolSeparator)
	if prefixEnd < 0 {
		return res
	}
	if prefixEnd == 0 {
		c.report(diag.Level_Error, component_ResolveSymbol, fromDoc.AtCorpusPath(),
			diag.ErrInvalidMoniker("%s: absolute symbols are not supported", symbol))
		return res
	}
	if depth <= 0 {
		c.report(diag.Level_Error, component_ResolveSymbol, fromDoc.AtCorpusPath(),
			diag.ErrInvalidMoniker("%s: moniker chain is too deep", symbol))
		return res
	}

	moniker, rest := symbol[:prefixEnd], symbol[prefixEnd+1:]
	res.symbol = rest
	res.docs = c.symbols.Lookup(rest)

	monikerDoc, ok := c.priorities(fromDoc).Moniker(moniker)
	if !ok {
		monikerDoc, ok = c.priorities(wrtDoc).Moniker(moniker)
	}
	if !ok {
		// unknown moniker, the symbol is not found
		res.symbol, res.docs = symbol, nil
		return res
	}
	opts.FromMoniker = moniker

	sub := c.docsForSymbol(opts, wrtDoc, monikerDoc, rest, depth-1)
	sub.docs = c.reachable(monikerDoc, sub.docs)
	if len(sub.docs) == 0 && wrtDoc == fromDoc {
		// the answer may live one level deeper than the moniker document
		sub = c.docsForSymbol(opts, monikerDoc, monikerDoc, rest, depth-1)
		sub.docs = c.reachable(monikerDoc, sub.docs)
	}
	if len(sub.docs) > 0 {
		return sub
	}
	res.symbol = sub.symbol
	return res
}

// Returns docs which are reachable by imports from root
func (c *Corpus) reachable(root *objdef.Document, docs []*objdef.Document) []*objdef.Document {
	p := c.priorities(root)
	var res []*objdef.Document
	for _, d := range docs {
		if _, ok := p.Index(d); ok {
			res = append(res, d)
		}
	}
	return res
}

// Returns object the reference points to: inline object or resolved symbol
func (c *Corpus) FetchDefinition(ref *objdef.Reference, opts *ResolveOptions) objdef.IObject {
	if ref == nil {
		return nil
	}
	switch ref.Value.Kind() {
	case objdef.RefValueKind_Object:
		return ref.Value.Object()
	case objdef.RefValueKind_Name:
		doc := ref.InDocument()
		if doc == nil || isIntrinsic(ref) {
			return nil
		}
		return c.ResolveSymbol(opts.withWrtDoc(doc), doc, ref.Value.Name(), ref.ObjectType(), true)
	}
	return nil
}

// Returns true if reference names intrinsic base data type
func isIntrinsic(ref *objdef.Reference) bool {
	return ref.ObjectType() == objdef.ObjectType_DataTypeRef && objdef.IsBaseType(ref.Value.Name())
}
