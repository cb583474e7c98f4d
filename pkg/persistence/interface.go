/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

import "github.com/voedger/schemacorpus/pkg/objdef"

// Converts raw document content into document objects
type IPersistence interface {
	// Returns true if name looks like a document file name
	IsDocumentName(name string) bool

	// Parses content. Returned document is not bound to any folder
	Load(name string, content []byte) (*objdef.Document, error)
}
