/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package bbolt

// Opens (creates if needed) bolt database in params.DBDir
func Provide(params ParamsType) (*Adapter, error) {
	return open(params)
}
