/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/voedger/schemacorpus/pkg/istorage"
)

const (
	fileMode   fs.FileMode = 0o644
	folderMode fs.FileMode = 0o755
)

// File system adapter rooted at folder
type Adapter struct {
	root string
}

func New(root string) *Adapter {
	return &Adapter{root: root}
}

func (a *Adapter) fullPath(path string) string {
	return filepath.Join(a.root, filepath.FromSlash(path))
}

func (a *Adapter) Read(_ context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(a.fullPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, istorage.NewErrDocumentDoesNotExist(path)
	}
	return content, err
}

func (a *Adapter) LastModified(_ context.Context, path string) (time.Time, error) {
	info, err := os.Stat(a.fullPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, istorage.NewErrDocumentDoesNotExist(path)
	}
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (a *Adapter) Write(_ context.Context, path string, content []byte, modified time.Time) error {
	fp := a.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(fp), folderMode); err != nil {
		return err
	}
	if err := os.WriteFile(fp, content, fileMode); err != nil {
		return err
	}
	return os.Chtimes(fp, modified, modified)
}
