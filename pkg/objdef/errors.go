/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import (
	"errors"
	"fmt"
)

var ErrNotReferenceKindError = errors.New("object type is not a reference kind")

func ErrNotReferenceKind(kind ObjectType) error {
	return fmt.Errorf("%w: %v", ErrNotReferenceKindError, kind)
}
