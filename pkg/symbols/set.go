/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package symbols

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set of symbol names touched by a resolution
type Set map[string]struct{}

func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s Set) Add(name string) {
	s[name] = struct{}{}
}

func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Adds all names from other set
func (s Set) Merge(other Set) {
	for n := range other {
		s[n] = struct{}{}
	}
}

func (s Set) Copy() Set {
	return maps.Clone(s)
}

// Returns names sorted ascending
func (s Set) Sorted() []string {
	nn := maps.Keys(s)
	slices.Sort(nn)
	return nn
}
