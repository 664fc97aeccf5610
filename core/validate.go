// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Full invariant check, re-deriving the switch table from incidence.

package core

import "github.com/pkg/errors"

// Validate checks every structural invariant of cx and returns an error
// wrapping ErrCorruptComplex describing the first violation found:
//   - buckets agree with live cells and dimensions;
//   - facets are one rank below, cofacets one rank above, and the two
//     relations are mutually symmetric;
//   - the diamond property holds for every slot;
//   - the switch table equals the one derived from incidence.
//
// Complexity: O(cells · f² · u).
func (cx *CellComplex) Validate() error {
	corrupt := func(format string, args ...interface{}) error {
		return errors.Wrapf(ErrCorruptComplex, format, args...)
	}

	live := 0
	for d, b := range cx.buckets {
		it := b.Iterator()
		for it.Next() {
			c := it.Value().(Cell)
			if c.dim != d || !cx.Has(c) {
				return corrupt("bucket %d holds %v", d, c)
			}
			live++
		}
	}
	if live+2 != len(cx.lower) || len(cx.lower) != len(cx.upper) {
		return corrupt("%d bucketed cells, %d lower and %d upper entries", live, len(cx.lower), len(cx.upper))
	}

	for c, fs := range cx.lower {
		if c.cx != cx {
			return corrupt("foreign handle %v", c)
		}
		if c != cx.empty && c != cx.full && len(fs) == 0 {
			return corrupt("%v has no facets", c)
		}
		for _, f := range fs {
			if f.dim != c.dim-1 || !cx.Has(f) {
				return corrupt("bad facet %v of %v", f, c)
			}
			if !contains(cx.upper[f], c) {
				return corrupt("%v missing from cofacets of %v", c, f)
			}
		}
	}
	for c, us := range cx.upper {
		for _, u := range us {
			if u.dim != c.dim+1 || !contains(cx.lower[u], c) {
				return corrupt("bad cofacet %v of %v", u, c)
			}
		}
	}

	want := make(map[slot]Cell)
	for _, b := range cx.buckets {
		it := b.Iterator()
		for it.Next() {
			c := it.Value().(Cell)
			if err := cx.deriveSlots(c, want); err != nil {
				return err
			}
		}
	}
	if len(want) != len(cx.switches) {
		return corrupt("switch table has %d entries, incidence implies %d", len(cx.switches), len(want))
	}
	for s, c := range want {
		if got, ok := cx.switches[s]; !ok || got != c {
			return corrupt("switch (%v, %v, %v) is %v, want %v", s.lo, s.cell, s.hi, got, c)
		}
	}

	return nil
}

// deriveSlots adds the switch pairs implied by live cell c to want.
func (cx *CellComplex) deriveSlots(c Cell, want map[slot]Cell) error {
	for _, d := range cx.diamondsFor(c, cx.lower[c], true) {
		switch len(d.mids) {
		case 0, 1:
		case 2:
			want[slot{d.lo, d.mids[0], d.hi}] = d.mids[1]
			want[slot{d.lo, d.mids[1], d.hi}] = d.mids[0]
		default:
			return errors.Wrapf(ErrCorruptComplex, "%d cells between %v and %v", len(d.mids), d.lo, d.hi)
		}
	}

	return nil
}

func contains(cs []Cell, x Cell) bool {
	for _, c := range cs {
		if c == x {
			return true
		}
	}

	return false
}
