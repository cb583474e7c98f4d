/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package relationships

import "github.com/voedger/schemacorpus/pkg/objdef"

// Resolves references met in the attribute context tree
type IObjectResolver interface {
	// Returns object the reference points to. Nil if reference can not be resolved
	FetchDefinition(ref *objdef.Reference) objdef.IObject

	// Returns absolute corpus path. Relative paths are resolved against relativeTo folder
	AbsolutePath(path, relativeTo string) string
}
