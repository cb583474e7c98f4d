/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"golang.org/x/text/cases"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/objdef"
)

func newRegistry() *registry {
	return &registry{docs: make(map[string]*objdef.Document)}
}

// Returns registry key of the corpus path
func registryKey(path string) string {
	return cases.Fold().String(path)
}

// Adds document bound to folder. Returns ErrDuplicateDocument if path is taken
func (r *registry) add(folder *objdef.Folder, doc *objdef.Document) error {
	doc.Folder = folder
	key := registryKey(doc.AtCorpusPath())

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[key]; ok {
		return diag.ErrDuplicateDocument(doc.AtCorpusPath())
	}
	r.docs[key] = doc
	r.order = append(r.order, doc)
	return nil
}

// Removes document. Returns false if path is not registered for doc
func (r *registry) remove(path string, doc *objdef.Document) bool {
	key := registryKey(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.docs[key] != doc {
		return false
	}
	delete(r.docs, key)
	for i, d := range r.order {
		if d == doc {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *registry) get(path string) (*objdef.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[registryKey(path)]
	return doc, ok
}

// Returns documents which need indexing in the order they were added
func (r *registry) listNotIndexed() []*objdef.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []*objdef.Document
	for _, d := range r.order {
		if d.NeedsIndexing() {
			res = append(res, d)
		}
	}
	return res
}

// Returns all documents in the order they were added
func (r *registry) listAll() []*objdef.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*objdef.Document(nil), r.order...)
}

func (r *registry) markIndexed(doc *objdef.Document) {
	doc.SetNeedsIndexing(false)
}

// Returns document and marks it for indexing, if not marked yet
func (r *registry) fetchAndMarkForIndexing(path string) (*objdef.Document, bool) {
	doc, ok := r.get(path)
	if ok && !doc.NeedsIndexing() {
		doc.SetNeedsIndexing(true)
	}
	return doc, ok
}
