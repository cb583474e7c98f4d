/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package imports

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

type graph map[string][]Edge[string]

func (g graph) importsOf(doc string) []Edge[string] {
	return g[doc]
}

func plain(docs ...string) []Edge[string] {
	ee := make([]Edge[string], 0, len(docs))
	for _, d := range docs {
		ee = append(ee, Edge[string]{Target: d})
	}
	return ee
}

func TestPrioritize(t *testing.T) {
	require := require.New(t)

	g := graph{
		"root": plain("a", "b"),
		"a":    plain("c", "b"),
		"b":    plain("d"),
		"c":    plain("d"),
	}

	p := Prioritize("root", g.importsOf)

	require.Equal([]string{"root", "a", "b", "c", "d"}, p.Order())
	require.Equal(5, p.Len())

	for i, doc := range p.Order() {
		idx, ok := p.Index(doc)
		require.True(ok)
		require.Equal(i, idx)
	}

	_, ok := p.Index("unknown")
	require.False(ok)
	require.False(p.HasCircularImport())

	t.Run("best candidate", func(t *testing.T) {
		best, ok := p.Best([]string{"d", "b", "c"})
		require.True(ok)
		require.Equal("b", best)

		best, ok = p.Best([]string{"d", "root", "a"})
		require.True(ok)
		require.Equal("root", best)

		_, ok = p.Best([]string{"x", "y"})
		require.False(ok)

		_, ok = p.Best(nil)
		require.False(ok)
	})
}

func TestPrioritizeCircular(t *testing.T) {
	require := require.New(t)

	g := graph{
		"root": plain("a"),
		"a":    plain("b"),
		"b":    plain("root", "a"),
	}

	p := Prioritize("root", g.importsOf)
	require.Equal([]string{"root", "a", "b"}, p.Order())
	require.True(p.HasCircularImport())

	p = Prioritize("a", g.importsOf)
	require.Equal([]string{"a", "b", "root"}, p.Order())
	require.True(p.HasCircularImport())
}

func TestPrioritizeSkipsNotLoaded(t *testing.T) {
	require := require.New(t)

	g := graph{
		"root": {{Target: ""}, {Target: "a", Moniker: "x"}},
	}

	p := Prioritize("root", g.importsOf)
	require.Equal([]string{"root", "a"}, p.Order())
}

func TestMonikers(t *testing.T) {
	require := require.New(t)

	g := graph{
		"root": {
			{Target: "a", Moniker: "m"},
			{Target: "b"},
			{Target: "c", Moniker: "m"},
		},
		"b": {
			{Target: "d", Moniker: "m"},
			{Target: "e", Moniker: "n"},
			{Target: "f"},
		},
		"a": {
			{Target: "g", Moniker: "hidden"},
		},
		"f": {
			{Target: "h", Moniker: "deep"},
		},
	}

	p := Prioritize("root", g.importsOf)

	t.Run("own moniker binds first, first binding wins", func(t *testing.T) {
		doc, ok := p.Moniker("m")
		require.True(ok)
		require.Equal("a", doc)
	})

	t.Run("moniker re-exported through plain import", func(t *testing.T) {
		doc, ok := p.Moniker("n")
		require.True(ok)
		require.Equal("e", doc)

		doc, ok = p.Moniker("deep")
		require.True(ok)
		require.Equal("h", doc)
	})

	t.Run("moniker of aliased import is not visible", func(t *testing.T) {
		_, ok := p.Moniker("hidden")
		require.False(ok)
	})

	require.Equal([]string{"deep", "m", "n"}, p.Monikers())

	t.Run("monikered imports are prioritized too", func(t *testing.T) {
		_, ok := p.Index("g")
		require.True(ok)
	})
}

func TestPrioritizeFuzz(t *testing.T) {
	require := require.New(t)

	f := fuzz.New().NilChance(0)

	for i := 0; i < 100; i++ {
		var edges [][2]uint8
		f.Fuzz(&edges)

		g := graph{}
		for _, e := range edges {
			from, to := fmt.Sprint(e[0]%16), fmt.Sprint(e[1]%16)
			g[from] = append(g[from], Edge[string]{Target: to})
		}

		p := Prioritize("0", g.importsOf)

		idx, ok := p.Index("0")
		require.True(ok)
		require.Zero(idx)

		// every document is numbered once and densely
		seen := map[string]bool{}
		for i, doc := range p.Order() {
			require.False(seen[doc])
			seen[doc] = true
			idx, ok := p.Index(doc)
			require.True(ok)
			require.Equal(i, idx)
		}

		// every import of a reachable document is reachable, only root has index 0
		for _, doc := range p.Order() {
			for _, e := range g[doc] {
				idx, ok := p.Index(e.Target)
				require.True(ok)
				if e.Target != "0" {
					require.Greater(idx, 0)
				}
			}
		}
	}
}
