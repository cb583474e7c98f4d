/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pipeline

// Error places
const (
	placeDoSync = "doSync"
)
