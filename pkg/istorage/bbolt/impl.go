/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package bbolt

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/voedger/schemacorpus/pkg/istorage"
)

func open(params ParamsType) (*Adapter, error) {
	if err := os.MkdirAll(params.DBDir, dbFolderMode); err != nil {
		return nil, err
	}
	name := params.DBName
	if name == "" {
		name = defaultDBName
	}
	db, err := bolt.Open(filepath.Join(params.DBDir, name), dbFileMode, bolt.DefaultOptions)
	if err != nil {
		return nil, err
	}
	if err := initDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Adapter{db: db}, nil
}

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{contentBucketName, modifiedBucketName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *Adapter) Read(_ context.Context, path string) (content []byte, err error) {
	err = a.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(contentBucketName))
		if b == nil {
			return ErrBucketNotFound
		}
		v := b.Get([]byte(path))
		if v == nil {
			return istorage.NewErrDocumentDoesNotExist(path)
		}
		// value is valid only inside transaction
		content = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}

func (a *Adapter) LastModified(_ context.Context, path string) (modified time.Time, err error) {
	err = a.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(modifiedBucketName))
		if b == nil {
			return ErrBucketNotFound
		}
		v := b.Get([]byte(path))
		if v == nil {
			return istorage.NewErrDocumentDoesNotExist(path)
		}
		modified = time.Unix(0, int64(binary.BigEndian.Uint64(v))).UTC()
		return nil
	})
	return modified, err
}

func (a *Adapter) Write(_ context.Context, path string, content []byte, modified time.Time) error {
	return a.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(contentBucketName))
		if b == nil {
			return ErrBucketNotFound
		}
		if err := b.Put([]byte(path), content); err != nil {
			return err
		}
		m := tx.Bucket([]byte(modifiedBucketName))
		if m == nil {
			return ErrBucketNotFound
		}
		ts := make([]byte, 8)
		binary.BigEndian.PutUint64(ts, uint64(modified.UnixNano()))
		return m.Put([]byte(path), ts)
	})
}

func (a *Adapter) Close() error {
	return a.db.Close()
}
