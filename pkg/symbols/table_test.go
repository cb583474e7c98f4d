/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package symbols

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	require := require.New(t)

	tbl := NewTable[string]()
	require.False(tbl.Contains("Customer"))
	require.Empty(tbl.Lookup("Customer"))

	tbl.Register("Customer", "a.cdm.yaml")
	tbl.Register("Customer", "b.cdm.yaml")
	tbl.Register("Customer", "a.cdm.yaml")
	tbl.Register("Invoice", "b.cdm.yaml")

	require.True(tbl.Contains("Customer"))
	require.Equal([]string{"a.cdm.yaml", "b.cdm.yaml", "a.cdm.yaml"}, tbl.Lookup("Customer"))
	require.Equal(2, tbl.Len())

	t.Run("unregister removes first occurrence only", func(t *testing.T) {
		tbl.Unregister("Customer", "a.cdm.yaml")
		require.Equal([]string{"b.cdm.yaml", "a.cdm.yaml"}, tbl.Lookup("Customer"))
	})

	t.Run("unregister of absent document is no-op", func(t *testing.T) {
		tbl.Unregister("Customer", "c.cdm.yaml")
		tbl.Unregister("Unknown", "a.cdm.yaml")
		require.Equal([]string{"b.cdm.yaml", "a.cdm.yaml"}, tbl.Lookup("Customer"))
	})

	t.Run("symbol disappears with its last document", func(t *testing.T) {
		tbl.Unregister("Invoice", "b.cdm.yaml")
		require.False(tbl.Contains("Invoice"))
		require.Equal(1, tbl.Len())
	})
}

func TestTableRegisterUnregisterFuzz(t *testing.T) {
	require := require.New(t)

	type op struct {
		Name     uint8
		Doc      uint8
		Register bool
	}

	f := fuzz.New().NilChance(0).NumElements(1, 50)
	for i := 0; i < 100; i++ {
		var ops []op
		f.Fuzz(&ops)

		tbl := NewTable[uint8]()
		model := map[uint8][]uint8{}
		for _, o := range ops {
			name, doc := o.Name%4, o.Doc%4
			sym := string(rune('A' + name))
			if o.Register {
				tbl.Register(sym, doc)
				model[name] = append(model[name], doc)
				continue
			}
			tbl.Unregister(sym, doc)
			for i, d := range model[name] {
				if d == doc {
					model[name] = append(model[name][:i:i], model[name][i+1:]...)
					break
				}
			}
		}

		for name, docs := range model {
			sym := string(rune('A' + name))
			if len(docs) == 0 {
				require.False(tbl.Contains(sym))
				continue
			}
			require.Equal(docs, tbl.Lookup(sym))
		}
	}
}

func TestSet(t *testing.T) {
	require := require.New(t)

	s := NewSet("b", "a")
	s.Add("c")
	s.Add("a")
	require.Equal([]string{"a", "b", "c"}, s.Sorted())
	require.True(s.Has("b"))
	require.False(s.Has("d"))

	c := s.Copy()
	c.Add("d")
	require.False(s.Has("d"))

	s.Merge(NewSet("x", "a"))
	require.Equal([]string{"a", "b", "c", "x"}, s.Sorted())
}

func TestDefinitionRefs(t *testing.T) {
	require := require.New(t)

	refs := NewDefinitionRefs()

	_, ok := refs.Lookup("rasb-1")
	require.False(ok)

	refs.Register("rasb-1", NewSet("Customer"))
	refs.Register("rasb-1", NewSet("Address", "Customer"))
	refs.Register("rtsb-1", NewSet())

	s, ok := refs.Lookup("rasb-1")
	require.True(ok)
	require.Equal([]string{"Address", "Customer"}, s.Sorted())

	_, ok = refs.Lookup("rtsb-1")
	require.False(ok, "empty set must not be registered")

	t.Run("registered set is not aliased", func(t *testing.T) {
		src := NewSet("Product")
		refs.Register("rasb-2", src)
		src.Add("Other")
		s, _ := refs.Lookup("rasb-2")
		require.Equal([]string{"Product"}, s.Sorted())
	})

	refs.Unregister("rasb-1")
	_, ok = refs.Lookup("rasb-1")
	require.False(ok)

	refs.Clear()
	_, ok = refs.Lookup("rasb-2")
	require.False(ok)
}
