/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

const (
	mountKind_Local = "local"
	mountKind_Bolt  = "bbolt"
	mountKind_Mem   = "mem"
)

const (
	defaultRootDir = "."
	indent         = "  "
)
