/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package bbolt

import "errors"

var ErrBucketNotFound = errors.New("bucket not found")
