/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package objdef

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Resolution directives, e.g. "normalized", "referenceOnly"
type Directives struct {
	set map[string]struct{}
}

func NewDirectives(dd ...string) Directives {
	d := Directives{set: make(map[string]struct{}, len(dd))}
	for _, s := range dd {
		d.set[s] = struct{}{}
	}
	return d
}

func (d Directives) Has(directive string) bool {
	_, ok := d.set[directive]
	return ok
}

// Returns copy with directive added
func (d Directives) With(directive string) Directives {
	c := Directives{set: maps.Clone(d.set)}
	if c.set == nil {
		c.set = make(map[string]struct{})
	}
	c.set[directive] = struct{}{}
	return c
}

// Returns stable tag: sorted directives joined with "-"
func (d Directives) Tag() string {
	dd := maps.Keys(d.set)
	slices.Sort(dd)
	return strings.Join(dd, "-")
}
