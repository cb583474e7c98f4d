/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package istorage

import (
	"context"
	"sync"
	"time"
)

// Namespace → adapter manager
type Manager struct {
	mu               sync.RWMutex
	adapters         map[string]IStorageAdapter
	defaultNamespace string
}

// Mounts adapter to namespace, replaces previously mounted one
func (m *Manager) Mount(namespace string, adapter IStorageAdapter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adapters[namespace] = adapter
}

func (m *Manager) Unmount(namespace string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.adapters, namespace)
}

// Returns adapter mounted to namespace
func (m *Manager) Adapter(namespace string) (IStorageAdapter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.adapters[namespace]
	return a, ok
}

func (m *Manager) DefaultNamespace() string {
	return m.defaultNamespace
}

func (m *Manager) CreateAbsoluteCorpusPath(path string, relativeTo string) (string, error) {
	return CreateAbsoluteCorpusPath(path, relativeTo, m.defaultNamespace)
}

func (m *Manager) Read(ctx context.Context, corpusPath string) ([]byte, error) {
	a, p, err := m.resolve(corpusPath)
	if err != nil {
		return nil, err
	}
	return a.Read(ctx, p)
}

func (m *Manager) LastModified(ctx context.Context, corpusPath string) (time.Time, error) {
	a, p, err := m.resolve(corpusPath)
	if err != nil {
		return time.Time{}, err
	}
	return a.LastModified(ctx, p)
}

func (m *Manager) resolve(corpusPath string) (IStorageAdapter, string, error) {
	abs, err := m.CreateAbsoluteCorpusPath(corpusPath, "")
	if err != nil {
		return nil, "", err
	}
	ns, p := SplitNamespacePath(abs)
	a, ok := m.Adapter(ns)
	if !ok {
		return nil, "", errNamespaceNotMounted(ns)
	}
	return a, p, nil
}
