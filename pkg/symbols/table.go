/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package symbols

// Global symbol table: symbol name → documents which declare it, in registration order.
//
// A name may be declared by several documents, ambiguity is resolved at lookup time.
// Not safe for concurrent mutation, callers serialize access
type Table[D comparable] struct {
	defs map[string][]D
}

func NewTable[D comparable]() *Table[D] {
	return &Table[D]{defs: make(map[string][]D)}
}

// Appends document to the list of documents declaring the symbol.
//
// Registering the same document twice is allowed
func (t *Table[D]) Register(name string, doc D) {
	t.defs[name] = append(t.defs[name], doc)
}

// Removes first occurrence of document from the symbol list. Absent document is ignored
func (t *Table[D]) Unregister(name string, doc D) {
	docs, ok := t.defs[name]
	if !ok {
		return
	}
	for i, d := range docs {
		if d == doc {
			docs = append(docs[:i:i], docs[i+1:]...)
			break
		}
	}
	if len(docs) == 0 {
		delete(t.defs, name)
		return
	}
	t.defs[name] = docs
}

// Returns documents declaring the symbol. Returned slice must not be modified
func (t *Table[D]) Lookup(name string) []D {
	return t.defs[name]
}

// Returns true if at least one document declares the symbol
func (t *Table[D]) Contains(name string) bool {
	return len(t.defs[name]) > 0
}

// Returns number of declared symbols
func (t *Table[D]) Len() int {
	return len(t.defs)
}
