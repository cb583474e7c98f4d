/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package diag

import (
	"errors"
	"fmt"
)

var ErrUnresolvedSymbolError = errors.New("unresolved symbol")

func ErrUnresolvedSymbol(msg string, args ...any) error {
	return enrichError(ErrUnresolvedSymbolError, msg, args...)
}

var ErrDuplicateDeclarationError = errors.New("duplicate declaration")

func ErrDuplicateDeclaration(msg string, args ...any) error {
	return enrichError(ErrDuplicateDeclarationError, msg, args...)
}

var ErrKindMismatchError = errors.New("kind mismatch")

func ErrKindMismatch(msg string, args ...any) error {
	return enrichError(ErrKindMismatchError, msg, args...)
}

var ErrInvalidMonikerError = errors.New("invalid moniker")

func ErrInvalidMoniker(msg string, args ...any) error {
	return enrichError(ErrInvalidMonikerError, msg, args...)
}

var ErrInvalidDocumentError = errors.New("invalid document")

func ErrInvalidDocument(msg string, args ...any) error {
	return enrichError(ErrInvalidDocumentError, msg, args...)
}

var ErrMissingRequiredParameterError = errors.New("missing required parameter")

func ErrMissingRequiredParameter(msg string, args ...any) error {
	return enrichError(ErrMissingRequiredParameterError, msg, args...)
}

var ErrDuplicateDocumentError = errors.New("duplicate document")

func ErrDuplicateDocument(msg string, args ...any) error {
	return enrichError(ErrDuplicateDocumentError, msg, args...)
}

var ErrDocumentNotFoundError = errors.New("document not found")

func ErrDocumentNotFound(msg string, args ...any) error {
	return enrichError(ErrDocumentNotFoundError, msg, args...)
}

var ErrObjectNotFoundError = errors.New("object not found")

func ErrObjectNotFound(msg string, args ...any) error {
	return enrichError(ErrObjectNotFoundError, msg, args...)
}

var ErrUnsupportedOperationError = errors.New("unsupported operation")

func ErrUnsupportedOperation(msg string, args ...any) error {
	return enrichError(ErrUnsupportedOperationError, msg, args...)
}

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}
