/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package bbolt

import "io/fs"

const (
	contentBucketName  = "content"
	modifiedBucketName = "modified"
	dbFileMode         = fs.FileMode(0o600)
	dbFolderMode       = fs.FileMode(0o755)
	defaultDBName      = "corpus.db"
)
