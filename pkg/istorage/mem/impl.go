/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package mem

import (
	"context"
	"sync"
	"time"

	"github.com/voedger/schemacorpus/pkg/istorage"
)

type entry struct {
	content  []byte
	modified time.Time
}

// In-memory adapter
type Adapter struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func New() *Adapter {
	return &Adapter{entries: make(map[string]entry)}
}

func (a *Adapter) Read(_ context.Context, path string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.entries[path]
	if !ok {
		return nil, istorage.NewErrDocumentDoesNotExist(path)
	}
	return append([]byte(nil), e.content...), nil
}

func (a *Adapter) LastModified(_ context.Context, path string) (time.Time, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.entries[path]
	if !ok {
		return time.Time{}, istorage.NewErrDocumentDoesNotExist(path)
	}
	return e.modified, nil
}

func (a *Adapter) Write(_ context.Context, path string, content []byte, modified time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries[path] = entry{content: append([]byte(nil), content...), modified: modified}
	return nil
}

// Writes content with current time as modification time
func (a *Adapter) Put(path string, content string) {
	_ = a.Write(context.Background(), path, []byte(content), time.Now())
}

func (a *Adapter) Delete(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, path)
}
