/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package istoragecache

// modification time prefix of cached value, unix nanoseconds
const modifiedSize = 8
