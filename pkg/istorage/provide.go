/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package istorage

// Creates storage manager without adapters. Empty defaultNamespace means DefaultNamespace
func NewManager(defaultNamespace string) *Manager {
	if defaultNamespace == "" {
		defaultNamespace = DefaultNamespace
	}
	return &Manager{
		adapters:         make(map[string]IStorageAdapter),
		defaultNamespace: defaultNamespace,
	}
}
