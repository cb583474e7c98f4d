/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package istorage

const (
	DefaultNamespace   = "local"
	namespaceSeparator = ":"
	pathSeparator      = "/"
)
