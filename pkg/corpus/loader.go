/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"context"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/sync/errgroup"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/istorage"
	"github.com/voedger/schemacorpus/pkg/objdef"
)

// Adds document at the corpus path, e.g. "local:/sales/Invoice.cdm.yaml".
//
// Document objects get identities, document is marked for indexing
func (c *Corpus) AddDocument(path string, doc *objdef.Document) error {
	abs, err := c.storage.CreateAbsoluteCorpusPath(path, "")
	if err != nil {
		return err
	}
	ns, p := istorage.SplitNamespacePath(abs)
	doc.DocumentName = objdef.LastSegment(p)
	if err := c.registry.add(objdef.NewFolder(ns, istorage.FolderOf(p)), doc); err != nil {
		c.report(diag.Level_Error, component_Registry, abs, err)
		return err
	}
	doc.Bind(c.nextID)
	doc.SetNeedsIndexing(true)
	return nil
}

// Returns registered document
func (c *Corpus) Document(path string) (*objdef.Document, bool) {
	abs, err := c.storage.CreateAbsoluteCorpusPath(path, "")
	if err != nil {
		return nil, false
	}
	return c.registry.get(abs)
}

// Marks registered document for indexing, for example after its definitions or imports were changed
func (c *Corpus) MarkForIndexing(path string) (*objdef.Document, bool) {
	abs, err := c.storage.CreateAbsoluteCorpusPath(path, "")
	if err != nil {
		return nil, false
	}
	doc, ok := c.registry.fetchAndMarkForIndexing(abs)
	if ok {
		c.markDependents(doc)
	}
	return doc, ok
}

// Removes document, its symbols and links to it from importing documents.
// Importing documents are marked for indexing. Returns false if document is not registered
func (c *Corpus) RemoveDocument(path string) bool {
	doc, ok := c.Document(path)
	if !ok {
		return false
	}
	c.unregisterDeclarations(doc)
	c.registry.remove(doc.AtCorpusPath(), doc)
	c.markDependents(doc)
	for _, d := range c.registry.listAll() {
		for _, imp := range d.Imports {
			if imp.Document == doc {
				imp.Document = nil
			}
		}
	}
	c.resetCaches()
	return true
}

// Reloads document if its content was modified after it was loaded.
// Returns true if document was reloaded
func (c *Corpus) RefreshDocument(ctx context.Context, path string) (bool, error) {
	doc, ok := c.Document(path)
	if !ok {
		return false, diag.ErrDocumentNotFound(path)
	}
	abs := doc.AtCorpusPath()
	modified, err := c.storage.LastModified(ctx, abs)
	if err != nil {
		return false, err
	}
	if !modified.After(doc.LastModified()) {
		return false, nil
	}
	if logger.IsVerbose() {
		logger.Verbose("reloading", abs, "modified at", modified)
	}
	c.RemoveDocument(abs)
	if _, err := c.loadDocument(ctx, abs); err != nil {
		return false, err
	}
	return true, nil
}

// Marks for indexing every document whose import priorities include doc
func (c *Corpus) markDependents(doc *objdef.Document) {
	for _, d := range c.registry.listAll() {
		if d == doc || d.NeedsIndexing() {
			continue
		}
		if p := d.ImportPriorities(); p != nil {
			if _, ok := p.Index(doc); ok {
				d.SetNeedsIndexing(true)
			}
		}
	}
}

// Fetches object by corpus path, e.g. "local:/sales/Invoice.cdm.yaml/Invoice/hasAttributes/customer".
//
// Document and its imports are loaded and indexed if needed. Document itself is returned if
// path has no object part
func (c *Corpus) FetchObject(ctx context.Context, path, relativeTo string, opts *ResolveOptions) (objdef.IObject, error) {
	abs, err := c.storage.CreateAbsoluteCorpusPath(path, relativeTo)
	if err != nil {
		c.report(diag.Level_Error, component_FetchObject, path, err)
		return nil, err
	}

	docPath, objPath := c.splitDocumentPath(abs)
	if docPath == "" {
		err := diag.ErrDocumentNotFound("no document name in path")
		c.report(diag.Level_Error, component_FetchObject, abs, err)
		return nil, err
	}

	doc, err := c.loadDocument(ctx, docPath)
	if err != nil {
		return nil, err
	}
	if doc.NeedsIndexing() {
		c.IndexDocuments(ctx, opts.withWrtDoc(doc), c.params.StrictValidation)
	}

	if objPath == "" {
		return doc, nil
	}
	obj, ok := doc.Declared(objPath)
	if !ok {
		err := diag.ErrObjectNotFound(objPath)
		c.report(diag.Level_Error, component_FetchObject, abs, err)
		return nil, err
	}
	return obj, nil
}

// Splits absolute path into document path and object path inside the document
func (c *Corpus) splitDocumentPath(abs string) (docPath, objPath string) {
	ns, p := istorage.SplitNamespacePath(abs)
	segments := strings.Split(p, symbolSeparator)
	for i, s := range segments {
		if c.persistence.IsDocumentName(s) {
			docPath = ns + ":" + strings.Join(segments[:i+1], symbolSeparator)
			objPath = strings.Join(segments[i+1:], symbolSeparator)
			return docPath, objPath
		}
	}
	return "", ""
}

// Returns registered document or loads it with its imports
func (c *Corpus) loadDocument(ctx context.Context, abs string) (*objdef.Document, error) {
	if doc, ok := c.registry.get(abs); ok {
		return doc, nil
	}
	res := c.readDocument(ctx, abs)
	if res.err != nil {
		c.report(diag.Level_Error, component_FetchObject, abs, res.err)
		return nil, res.err
	}
	if err := c.AddDocument(abs, res.doc); err != nil {
		return nil, err
	}
	if err := c.loadImports(ctx, []*objdef.Document{res.doc}); err != nil {
		return nil, err
	}
	return res.doc, nil
}

// Reads and parses document. Safe for concurrent use
func (c *Corpus) readDocument(ctx context.Context, abs string) loadResult {
	res := loadResult{path: abs}
	content, err := c.storage.Read(ctx, abs)
	if err != nil {
		res.err = diag.ErrDocumentNotFound("%s: %v", abs, err)
		return res
	}
	modified, err := c.storage.LastModified(ctx, abs)
	if err != nil {
		res.err = diag.ErrDocumentNotFound("%s: %v", abs, err)
		return res
	}
	doc, err := c.persistence.Load(objdef.LastSegment(abs), content)
	if err != nil {
		res.err = diag.ErrInvalidDocument("%v", err)
		return res
	}
	doc.SetLastModified(modified)
	res.doc = doc
	return res
}

// Links imports of docs to registered documents and loads missing ones.
//
// Missing documents of a round are loaded concurrently and registered by the calling goroutine,
// imports of loaded documents are processed by the next round
func (c *Corpus) loadImports(ctx context.Context, docs []*objdef.Document) error {
	failed := make(map[string]bool)
	for len(docs) > 0 {
		var missing []string
		seen := make(map[string]bool)
		for _, doc := range docs {
			for _, imp := range doc.Imports {
				if imp.Document != nil {
					continue
				}
				abs, err := c.storage.CreateAbsoluteCorpusPath(imp.CorpusPath, doc.Folder.AtCorpusPath())
				if err != nil {
					c.report(diag.Level_Error, component_LoadImports, doc.AtCorpusPath(), err)
					continue
				}
				if d, ok := c.registry.get(abs); ok {
					imp.Document = d
					continue
				}
				key := registryKey(abs)
				if !seen[key] && !failed[key] {
					seen[key] = true
					missing = append(missing, abs)
				}
			}
		}

		var loaded []*objdef.Document
		err := scatterGather(ctx, missing, c.params.MaxParallelLoads, c.readDocument, func(res loadResult) {
			if res.err != nil {
				failed[registryKey(res.path)] = true
				c.report(diag.Level_Error, component_LoadImports, res.path, res.err)
				return
			}
			if err := c.AddDocument(res.path, res.doc); err == nil {
				loaded = append(loaded, res.doc)
			}
		})
		if err != nil {
			return err
		}

		for _, doc := range docs {
			for _, imp := range doc.Imports {
				if imp.Document != nil {
					continue
				}
				if abs, err := c.storage.CreateAbsoluteCorpusPath(imp.CorpusPath, doc.Folder.AtCorpusPath()); err == nil {
					imp.Document, _ = c.registry.get(abs)
				}
			}
		}
		docs = loaded
	}
	return nil
}

// Maps source values concurrently by at most workers goroutines,
// mapped values are passed to gatherer in the calling goroutine
func scatterGather[IN any, OUT any](ctx context.Context, source []IN, workers int,
	mapper func(context.Context, IN) OUT, gatherer func(OUT)) error {
	if len(source) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	results := make(chan OUT)
	done := make(chan error, 1)

	go func() {
		for _, in := range source {
			in := in
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				out := mapper(gctx, in)
				select {
				case results <- out:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
		done <- g.Wait()
		close(results)
	}()

	for out := range results {
		gatherer(out)
	}
	if err := <-done; err != nil {
		return err
	}
	return ctx.Err()
}
