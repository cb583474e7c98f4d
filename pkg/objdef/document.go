/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import (
	"strings"
	"time"

	"github.com/voedger/schemacorpus/pkg/imports"
)

// Folder of the corpus: namespace and absolute folder path
type Folder struct {
	Namespace  string
	FolderPath string
}

// Creates folder. Folder path is normalized to start and end with "/"
func NewFolder(namespace, folderPath string) *Folder {
	if !strings.HasPrefix(folderPath, pathSeparator) {
		folderPath = pathSeparator + folderPath
	}
	if !strings.HasSuffix(folderPath, pathSeparator) {
		folderPath += pathSeparator
	}
	if namespace == "" {
		namespace = DefaultNamespaceName
	}
	return &Folder{Namespace: namespace, FolderPath: folderPath}
}

// Returns "namespace:/folder/path/"
func (f *Folder) AtCorpusPath() string {
	return f.Namespace + namespaceSeparator + f.FolderPath
}

// Import declaration
type Import struct {
	// Path of imported document, absolute or relative to the importing document folder
	CorpusPath string
	// Optional alias
	Moniker string
	// Imported document, nil until loaded
	Document *Document
}

// Schema document
type Document struct {
	object
	DocumentName string
	Folder       *Folder
	Imports      []*Import
	Definitions  []IObject

	declarations  map[string]IObject
	priorities    *imports.Priorities[*Document]
	state         IndexState
	valid         bool
	needsIndexing bool
	lastModified  time.Time
}

func NewDocument(name string) *Document {
	d := &Document{
		DocumentName:  name,
		declarations:  make(map[string]IObject),
		valid:         true,
		needsIndexing: true,
	}
	d.doc = d
	return d
}

func (d *Document) ObjectType() ObjectType {
	return ObjectType_Document
}

func (d *Document) Name() string {
	return d.DocumentName
}

// Returns "namespace:/folder/name". Name only if document has no folder yet
func (d *Document) AtCorpusPath() string {
	if d.Folder == nil {
		return d.DocumentName
	}
	return d.Folder.AtCorpusPath() + d.DocumentName
}

// Adds import declaration
func (d *Document) AddImport(corpusPath, moniker string) *Document {
	d.Imports = append(d.Imports, &Import{CorpusPath: corpusPath, Moniker: moniker})
	return d
}

// Adds top-level definitions
func (d *Document) AddDefinition(defs ...IObject) *Document {
	d.Definitions = append(d.Definitions, defs...)
	return d
}

// Returns top-level definition by name
func (d *Document) Definition(name string) IObject {
	for _, def := range d.Definitions {
		if def.Name() == name {
			return def
		}
	}
	return nil
}

// Declares object at path. Returns false and keeps existing object if path is already declared
func (d *Document) Declare(path string, obj IObject) bool {
	if _, ok := d.declarations[path]; ok {
		return false
	}
	d.declarations[path] = obj
	return true
}

// Returns object declared at path
func (d *Document) Declared(path string) (IObject, bool) {
	obj, ok := d.declarations[path]
	return obj, ok
}

// Calls cb for each declared path, order is not defined
func (d *Document) Declarations(cb func(path string, obj IObject)) {
	for p, o := range d.declarations {
		cb(p, o)
	}
}

// Removes all declarations
func (d *Document) ClearDeclarations() {
	d.declarations = make(map[string]IObject)
}

// Returns import priorities, nil if not computed yet
func (d *Document) ImportPriorities() *imports.Priorities[*Document] {
	return d.priorities
}

func (d *Document) SetImportPriorities(p *imports.Priorities[*Document]) {
	d.priorities = p
}

// Returns documents from loaded imports in declaration order
func (d *Document) ImportEdges() []imports.Edge[*Document] {
	ee := make([]imports.Edge[*Document], 0, len(d.Imports))
	for _, imp := range d.Imports {
		if imp.Document != nil {
			ee = append(ee, imports.Edge[*Document]{Target: imp.Document, Moniker: imp.Moniker})
		}
	}
	return ee
}

func (d *Document) IndexState() IndexState {
	return d.state
}

func (d *Document) SetIndexState(s IndexState) {
	d.state = s
}

// Returns false if document failed integrity check
func (d *Document) IsValid() bool {
	return d.valid
}

func (d *Document) SetValid(v bool) {
	d.valid = v
}

func (d *Document) NeedsIndexing() bool {
	return d.needsIndexing
}

// Marks document as not indexed or indexed. Marking document for indexing resets its state and priorities
func (d *Document) SetNeedsIndexing(v bool) {
	d.needsIndexing = v
	if v {
		d.state = IndexState_NotIndexed
		d.priorities = nil
	}
}

// Returns modification time of the content the document was loaded from
func (d *Document) LastModified() time.Time {
	return d.lastModified
}

func (d *Document) SetLastModified(t time.Time) {
	d.lastModified = t
}

func (d *Document) MissingFields() []string {
	return required(nil).check("name", d.DocumentName != "")
}

func (d *Document) pathFrom(string) string {
	return ""
}

func (d *Document) children(string) []child {
	cc := make([]child, 0, len(d.Definitions))
	for _, def := range d.Definitions {
		cc = append(cc, child{obj: def})
	}
	return cc
}
