/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package persistence

// Returns YAML persistence: documents "*.cdm.yaml" and "*.cdm.yml"
func Provide() IPersistence {
	return persistence{}
}
