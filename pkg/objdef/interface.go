/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

// Stable corpus-wide object identity. Zero means not assigned
type ObjectID uint64

// Schema object: document, definition, reference, argument or projection part
type IObject interface {
	ID() ObjectID
	ObjectType() ObjectType

	// Returns simple name or empty string for unnamed objects
	Name() string

	// Returns object which contains this one. Nil for documents and detached objects
	Owner() IObject

	// Returns document this object belongs to. Nil for detached objects
	InDocument() *Document

	// Returns path of the object inside its document, e.g. "Invoice/hasAttributes/customer"
	DeclaredPath() string

	// Returns full corpus path, e.g. "local:/sales/Invoice.cdm.yaml/Invoice"
	AtCorpusPath() string

	// Returns names of required properties which are not set
	MissingFields() []string

	base() *object
	pathFrom(pathFrom string) string
	children(path string) []child
}

// Called by Walk for each object with its path.
//
// Pre-visit returning true skips the object children and its post-visit.
// Post-visit returning true stops the walk
type VisitFunc func(obj IObject, path string) bool

type child struct {
	obj      IObject
	pathFrom string
}
