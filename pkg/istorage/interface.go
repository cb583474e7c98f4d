/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package istorage

import (
	"context"
	"time"
)

// Storage adapter of one namespace.
//
// Paths are absolute inside the namespace, e.g. "/core/Customer.cdm.yaml"
// @ConcurrentAccess
type IStorageAdapter interface {
	// Returns ErrDocumentDoesNotExist if there is no content at path
	Read(ctx context.Context, path string) (content []byte, err error)

	// Returns ErrDocumentDoesNotExist if there is no content at path
	LastModified(ctx context.Context, path string) (modified time.Time, err error)
}

// Adapter which content can be written
type IWritableAdapter interface {
	IStorageAdapter
	Write(ctx context.Context, path string, content []byte, modified time.Time) (err error)
}

// Corpus storage: adapters mounted by namespaces.
//
// Corpus paths look like "namespace:/folder/document.cdm.yaml"
// @ConcurrentAccess
type IStorage interface {
	Read(ctx context.Context, corpusPath string) (content []byte, err error)
	LastModified(ctx context.Context, corpusPath string) (modified time.Time, err error)

	// Makes absolute corpus path from path, relative paths are resolved against
	// relativeTo folder ("namespace:/folder/"). Empty relativeTo means default namespace root
	CreateAbsoluteCorpusPath(path string, relativeTo string) (string, error)

	DefaultNamespace() string
}
