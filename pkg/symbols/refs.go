/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package symbols

// Definition reference cache: definition key → symbols its resolution depends on
type DefinitionRefs struct {
	refs map[string]Set
}

func NewDefinitionRefs() *DefinitionRefs {
	return &DefinitionRefs{refs: make(map[string]Set)}
}

// Merges symbols into the set registered for key
func (r *DefinitionRefs) Register(key string, symbols Set) {
	if len(symbols) == 0 {
		return
	}
	existing, ok := r.refs[key]
	if !ok {
		r.refs[key] = symbols.Copy()
		return
	}
	existing.Merge(symbols)
}

func (r *DefinitionRefs) Unregister(key string) {
	delete(r.refs, key)
}

// Returns symbols registered for key
func (r *DefinitionRefs) Lookup(key string) (Set, bool) {
	s, ok := r.refs[key]
	return s, ok
}

// Removes every registered set
func (r *DefinitionRefs) Clear() {
	r.refs = make(map[string]Set)
}
