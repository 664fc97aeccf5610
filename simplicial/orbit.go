package simplicial

import "github.com/katalvlaran/cellcomplex/core"

// OppositeVertex crosses t's facet into the neighbouring top simplex and
// returns the flag there whose vertex is the one opposite that facet.
// ok is false when the facet lies on the boundary.
func (sc *Complex) OppositeVertex(t core.CellTuple) (core.CellTuple, bool) {
	ks := make([]int, 0, sc.Dim()+1)
	for k := sc.Dim(); k >= 0; k-- {
		ks = append(ks, k)
	}

	return sc.switchPath(t, ks)
}

// NextFacet rotates t to another facet of the same top simplex, switching
// at ranks dim-1 down to 0.
func (sc *Complex) NextFacet(t core.CellTuple) (core.CellTuple, bool) {
	ks := make([]int, 0, sc.Dim())
	for k := sc.Dim() - 1; k >= 0; k-- {
		ks = append(ks, k)
	}

	return sc.switchPath(t, ks)
}

// switchPath runs SwitchPath with in-range ranks, so only absence can fail.
func (sc *Complex) switchPath(t core.CellTuple, ks []int) (core.CellTuple, bool) {
	out, ok, err := sc.SwitchPath(t, ks...)
	if err != nil {
		return core.CellTuple{}, false
	}

	return out, ok
}
