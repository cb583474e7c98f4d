/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package corpus

import (
	"context"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/schemacorpus/pkg/diag"
	"github.com/voedger/schemacorpus/pkg/imports"
	"github.com/voedger/schemacorpus/pkg/objdef"
	"github.com/voedger/schemacorpus/pkg/pipeline"
)

// Indexes documents which are not indexed yet.
//
// Missing imports are loaded first. Each phase runs over the whole batch before the next one starts.
// References and trait arguments are resolved if strict is true.
// Returns false if errors were reported while indexing
func (c *Corpus) IndexDocuments(ctx context.Context, opts *ResolveOptions, strict bool) bool {
	docs := c.registry.listNotIndexed()
	if len(docs) == 0 {
		return true
	}

	errorsBefore := c.errors.Load()

	if err := c.loadImports(ctx, docs); err != nil {
		logger.Error("loading imports failed:", err)
		return false
	}
	docs = c.registry.listNotIndexed()

	if opts == nil {
		opts = NewResolveOptions(nil)
	}
	work := &indexWork{docs: docs, opts: opts, strict: strict}

	ops := []*pipeline.WiredOperator{
		pipeline.WireFunc(phase_Clear, c.clearDocuments),
		pipeline.WireFunc(phase_CheckIntegrity, c.checkIntegrity),
		pipeline.WireFunc(phase_Declare, c.declareDocuments),
		pipeline.WireFunc(phase_PrioritizeImports, c.prioritizeImports),
	}
	if strict {
		ops = append(ops,
			pipeline.WireFunc(phase_ResolveReferences, c.resolveReferences),
			pipeline.WireFunc(phase_ResolveTraitArgs, c.resolveTraitArguments),
		)
	}
	ops = append(ops, pipeline.WireFunc(phase_Finish, c.finishDocuments))

	p := pipeline.NewSyncPipeline(ctx, indexPipelineName, ops[0], ops[1:]...)
	err := p.SendSync(work)
	p.Close()
	if err != nil {
		logger.Error("indexing failed:", err)
		return false
	}

	if logger.IsVerbose() {
		for _, op := range ops {
			logger.Verbose(op.Name(), "done in", op.Elapsed, "for", len(docs), "documents")
		}
	}

	// resolution results may depend on the new declarations
	c.resetCaches()

	return c.errors.Load() == errorsBefore
}

// Returns valid documents of the work
func (w *indexWork) validDocs() []*objdef.Document {
	var res []*objdef.Document
	for _, d := range w.docs {
		if d.IsValid() {
			res = append(res, d)
		}
	}
	return res
}

func (c *Corpus) unregisterDeclarations(doc *objdef.Document) {
	doc.Declarations(func(path string, _ objdef.IObject) {
		c.symbols.Unregister(path, doc)
	})
}

func (c *Corpus) clearDocuments(_ context.Context, work interface{}) error {
	w := work.(*indexWork)
	for _, doc := range w.docs {
		c.unregisterDeclarations(doc)
		doc.ClearDeclarations()
		// objects added since the document was registered
		doc.Bind(c.nextID)
		doc.SetImportPriorities(nil)
		doc.SetValid(true)
		doc.SetIndexState(objdef.IndexState_NotIndexed)
	}
	return nil
}

// Marks documents with missing required properties as invalid
func (c *Corpus) checkIntegrity(ctx context.Context, work interface{}) error {
	w := work.(*indexWork)
	for _, doc := range w.docs {
		objdef.Walk(doc, "", func(obj objdef.IObject, path string) bool {
			if missing := obj.MissingFields(); len(missing) > 0 {
				doc.SetValid(false)
				c.report(diag.Level_Error, phase_CheckIntegrity, obj.AtCorpusPath(),
					diag.ErrInvalidDocument("%v %s: missing %s", obj.ObjectType(), path, strings.Join(missing, ", ")))
			}
			return false
		}, nil)
		if doc.IsValid() {
			doc.SetIndexState(objdef.IndexState_IntegrityChecked)
		}
	}
	return ctx.Err()
}

// Declares objects of valid documents in their declarations and in the symbol table
func (c *Corpus) declareDocuments(ctx context.Context, work interface{}) error {
	w := work.(*indexWork)
	for _, doc := range w.validDocs() {
		objdef.Walk(doc, "", func(obj objdef.IObject, path string) bool {
			switch obj.ObjectType() {
			case objdef.ObjectType_Document, objdef.ObjectType_ArgumentDef:
				return false
			}
			if strings.Contains(path, objdef.UnspecifiedName) {
				return false
			}
			if doc.Declare(path, obj) {
				c.symbols.Register(path, doc)
				return false
			}
			if !obj.ObjectType().MayRepeat() {
				c.report(diag.Level_Error, phase_Declare, obj.AtCorpusPath(),
					diag.ErrDuplicateDeclaration("%v %s", obj.ObjectType(), path))
			}
			return false
		}, nil)
		doc.SetIndexState(objdef.IndexState_DeclarationsIndexed)
	}
	return ctx.Err()
}

func (c *Corpus) prioritizeImports(ctx context.Context, work interface{}) error {
	w := work.(*indexWork)
	for _, doc := range w.validDocs() {
		p := imports.Prioritize(doc, (*objdef.Document).ImportEdges)
		doc.SetImportPriorities(p)
		if p.HasCircularImport() && logger.IsVerbose() {
			logger.Verbose(doc.AtCorpusPath(), "imports itself")
		}
	}
	return ctx.Err()
}

// Reports references which can not be resolved
func (c *Corpus) resolveReferences(ctx context.Context, work interface{}) error {
	w := work.(*indexWork)
	for _, doc := range w.validDocs() {
		opts := w.opts.Copy()
		opts.WrtDoc = doc
		objdef.Walk(doc, "", func(obj objdef.IObject, path string) bool {
			ref, ok := obj.(*objdef.Reference)
			if !ok || ref.Value.Kind() != objdef.RefValueKind_Name || isIntrinsic(ref) {
				return false
			}
			if _, found := c.resolveSymbol(opts, doc, ref.Value.Name(), ref.ObjectType(), true); !found {
				c.report(c.unresolvedLevel(opts), phase_ResolveReferences, obj.AtCorpusPath(),
					diag.ErrUnresolvedSymbol("%v %s", ref.ObjectType(), ref.Value.Name()))
			}
			return false
		}, nil)
		doc.SetIndexState(objdef.IndexState_ReferencesResolved)
	}
	return ctx.Err()
}

// Binds trait arguments to parameters and checks their values
func (c *Corpus) resolveTraitArguments(ctx context.Context, work interface{}) error {
	w := work.(*indexWork)
	for _, doc := range w.validDocs() {
		opts := w.opts.Copy()
		opts.WrtDoc = doc
		var scopes []*traitScope

		pre := func(obj objdef.IObject, path string) bool {
			switch o := obj.(type) {
			case *objdef.Reference:
				if o.ObjectType() == objdef.ObjectType_TraitRef {
					scopes = append(scopes, c.newTraitScope(o, opts))
				}
			case *objdef.Argument:
				if len(scopes) > 0 {
					c.resolveArgument(scopes[len(scopes)-1], o, opts)
				}
			}
			return false
		}
		post := func(obj objdef.IObject, path string) bool {
			if ref, ok := obj.(*objdef.Reference); ok && ref.ObjectType() == objdef.ObjectType_TraitRef {
				c.checkRequiredParameters(scopes[len(scopes)-1])
				scopes = scopes[:len(scopes)-1]
			}
			return false
		}
		objdef.Walk(doc, "", pre, post)
		doc.SetIndexState(objdef.IndexState_TraitArgumentsResolved)
	}
	return ctx.Err()
}

func (c *Corpus) finishDocuments(ctx context.Context, work interface{}) error {
	w := work.(*indexWork)
	for _, doc := range w.docs {
		if doc.IsValid() {
			doc.SetIndexState(objdef.IndexState_Finished)
		}
		c.registry.markIndexed(doc)
		if logger.IsVerbose() {
			for _, def := range doc.Definitions {
				if def.ObjectType() == objdef.ObjectType_EntityDef {
					logger.Verbose("declared entity", def.AtCorpusPath())
				}
			}
		}
	}
	return ctx.Err()
}
