/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package istorage

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentDoesNotExist = errors.New("document does not exist")
	ErrNamespaceNotMounted  = errors.New("namespace is not mounted")
	ErrInvalidCorpusPath    = errors.New("invalid corpus path")
)

func NewErrDocumentDoesNotExist(path string) error {
	return fmt.Errorf("%w: %s", ErrDocumentDoesNotExist, path)
}

func errNamespaceNotMounted(ns string) error {
	return fmt.Errorf("%w: %s", ErrNamespaceNotMounted, ns)
}

func errInvalidCorpusPath(path, reason string) error {
	return fmt.Errorf("%w: '%s' %s", ErrInvalidCorpusPath, path, reason)
}
