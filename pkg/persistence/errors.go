/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

import (
	"errors"
	"fmt"
)

var ErrInvalidContentError = errors.New("invalid document content")

func ErrInvalidContent(doc string, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidContentError, doc, fmt.Sprintf(msg, args...))
}

var errAmbiguousDefinition = errors.New("exactly one of entity, trait, dataType, purpose, attributeGroup, constantEntity must be set")
