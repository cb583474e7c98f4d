/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package istorage

import (
	"path"
	"strings"
)

// Splits "namespace:/path" into namespace and path. Namespace is empty if path has no namespace
func SplitNamespacePath(corpusPath string) (namespace, p string) {
	i := strings.Index(corpusPath, namespaceSeparator)
	if i < 0 || strings.Contains(corpusPath[:i], pathSeparator) {
		return "", corpusPath
	}
	return corpusPath[:i], corpusPath[i+1:]
}

// Returns folder part of corpus path: everything up to and including the last "/"
func FolderOf(corpusPath string) string {
	i := strings.LastIndex(corpusPath, pathSeparator)
	if i < 0 {
		return ""
	}
	return corpusPath[:i+1]
}

// Makes absolute corpus path, see IStorage.CreateAbsoluteCorpusPath
func CreateAbsoluteCorpusPath(p, relativeTo, defaultNamespace string) (string, error) {
	if p == "" {
		return "", errInvalidCorpusPath(p, "is empty")
	}

	ns, rel := SplitNamespacePath(p)
	if ns == "" {
		relNs, relFolder := SplitNamespacePath(relativeTo)
		if relNs == "" {
			relNs = defaultNamespace
		}
		ns = relNs
		if !strings.HasPrefix(rel, pathSeparator) {
			if relFolder == "" {
				relFolder = pathSeparator
			}
			if !strings.HasSuffix(relFolder, pathSeparator) {
				relFolder = FolderOf(relFolder)
			}
			rel = relFolder + rel
		}
	}
	if !strings.HasPrefix(rel, pathSeparator) {
		return "", errInvalidCorpusPath(p, "must be absolute inside namespace")
	}

	cleaned := path.Clean(rel)
	if strings.HasSuffix(rel, pathSeparator) && cleaned != pathSeparator {
		cleaned += pathSeparator
	}
	return ns + namespaceSeparator + cleaned, nil
}
