/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package bbolt

import bolt "go.etcd.io/bbolt"

type ParamsType struct {
	// Folder of the database file
	DBDir string
	// Database file name, "corpus.db" if empty
	DBName string
}

// Adapter which keeps documents in bolt database
type Adapter struct {
	db *bolt.DB
}
