// SPDX-License-Identifier: MIT
//
// File: flip.go
// Role: Bistellar flips around an interior facet.
// Determinism:
//   - Top simplices are discovered in BFS order from the lower cofacet.
//   - New simplices are built in vertex-set order; faces are reused by vertex set.

package simplicial

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cellcomplex/bfs"
	"github.com/katalvlaran/cellcomplex/core"
)

// Flip performs the bistellar flip defined by an interior facet.
//
// Let V be the dim+2 vertices of the two top simplices sharing facet. Every
// top simplex reachable from them through facets whose opposite vertex lies
// in V is part of the flip region; each of those misses exactly one vertex
// of V. The region is replaced by the simplices V \ {v} for every v that no
// region simplex misses. Faces of the region are reused when the new
// simplices need them and deleted when nothing references them any more.
//
// The flip is purely combinatorial; the caller decides whether the new
// configuration is geometrically valid. The whole operation is one
// transaction.
func (sc *Complex) Flip(facet core.Cell) error {
	n := sc.Dim()
	if !sc.Has(facet) || facet.Dim() != n-1 || n < 1 {
		return errors.Wrapf(ErrInvalidFlip, "flip: %v is not a facet", facet)
	}
	tops := sc.Cofacets(facet)
	if len(tops) != 2 {
		return errors.Wrapf(ErrInvalidFlip, "flip: %v has %d top cofacets, want 2", facet, len(tops))
	}

	verts, err := sc.flipVertices(tops[0], tops[1])
	if err != nil {
		return errors.Wrap(err, "flip")
	}
	inV := make(map[core.Cell]struct{}, len(verts))
	for _, v := range verts {
		inV[v] = struct{}{}
	}
	region, err := sc.flipRegion(tops[0], inV)
	if err != nil {
		return errors.Wrap(err, "flip")
	}

	// Which vertex of V does each region simplex miss?
	missing := make(map[core.Cell]struct{}, len(region))
	for _, t := range region {
		vs, err := sc.Vertices(t)
		if err != nil {
			return errors.Wrap(err, "flip")
		}
		for _, v := range verts {
			if !containsCell(vs, v) {
				missing[v] = struct{}{}
			}
		}
	}

	// Faces of the region by vertex set, dimensions 1..n-1.
	faces := make(map[string]core.Cell)
	var indexed []core.Cell
	for _, t := range region {
		for d := 1; d < n; d++ {
			fs, err := sc.Down(t, n-d)
			if err != nil {
				return errors.Wrap(err, "flip")
			}
			for _, f := range fs {
				vs, err := sc.Vertices(f)
				if err != nil {
					return errors.Wrap(err, "flip")
				}
				k := vertexKey(vs)
				if _, ok := faces[k]; !ok {
					faces[k] = f
					indexed = append(indexed, f)
				}
			}
		}
	}

	created, removed := 0, len(region)
	err = sc.Transact(func() error {
		for _, t := range region {
			if err := sc.Delete(t); err != nil {
				return err
			}
		}
		for _, skip := range verts {
			if _, ok := missing[skip]; ok {
				continue
			}
			w := make([]core.Cell, 0, len(verts)-1)
			for _, v := range verts {
				if v != skip {
					w = append(w, v)
				}
			}
			before := len(faces)
			if _, err := sc.buildSimplex(w, faces); err != nil {
				return err
			}
			created += len(faces) - before
		}
		// Drop region faces nothing uses any more, highest dimension first.
		sort.SliceStable(indexed, func(i, j int) bool { return indexed[j].Less(indexed[i]) })
		for _, f := range indexed {
			if sc.Has(f) && len(sc.Cofacets(f)) == 0 {
				if err := sc.Delete(f); err != nil {
					return err
				}
				removed++
			}
		}

		return nil
	})
	if err != nil {
		sc.log.Warn("flip rolled back",
			slog.String("facet", facet.String()),
			slog.String("error", err.Error()))
		return errors.Wrapf(err, "flip %v", facet)
	}
	sc.log.Debug("flip",
		slog.String("facet", facet.String()),
		slog.Int("region", len(region)),
		slog.Int("created", created),
		slog.Int("removed", removed))

	return nil
}

// flipVertices returns the vertices of a followed by the one vertex of b
// not in a.
func (sc *Complex) flipVertices(a, b core.Cell) ([]core.Cell, error) {
	va, err := sc.Vertices(a)
	if err != nil {
		return nil, err
	}
	vb, err := sc.Vertices(b)
	if err != nil {
		return nil, err
	}
	out := append([]core.Cell(nil), va...)
	for _, v := range vb {
		if !containsCell(va, v) {
			out = append(out, v)
		}
	}
	if len(out) != sc.Dim()+2 {
		return nil, errors.Wrapf(ErrInvalidFlip, "%v and %v span %d vertices, want %d", a, b, len(out), sc.Dim()+2)
	}

	return out, nil
}

// flipRegion runs a BFS over top simplices starting at start, crossing a
// facet only when the vertex opposite it is in inV.
func (sc *Complex) flipRegion(start core.Cell, inV map[core.Cell]struct{}) ([]core.Cell, error) {
	neighbors := func(t core.Cell) []core.Cell {
		var out []core.Cell
		for _, f := range sc.Facets(t) {
			tu, ok := sc.Tuple(f, t)
			if !ok {
				continue
			}
			o, ok := sc.OppositeVertex(tu)
			if !ok {
				continue
			}
			if _, in := inV[o.At(0)]; in {
				out = append(out, o.At(sc.Dim()))
			}
		}

		return out
	}
	res, err := bfs.BFS(start, neighbors)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// buildSimplex returns the cell spanned by vertex set w, creating it and any
// missing faces bottom-up. faces maps vertex keys to known cells and gains
// every cell created here.
func (sc *Complex) buildSimplex(w []core.Cell, faces map[string]core.Cell) (core.Cell, error) {
	if len(w) == 1 {
		return w[0], nil
	}
	k := vertexKey(w)
	if c, ok := faces[k]; ok {
		return c, nil
	}
	boundary := make([]core.Cell, 0, len(w))
	for i := range w {
		sub := make([]core.Cell, 0, len(w)-1)
		sub = append(sub, w[:i]...)
		sub = append(sub, w[i+1:]...)
		f, err := sc.buildSimplex(sub, faces)
		if err != nil {
			return core.Cell{}, err
		}
		boundary = append(boundary, f)
	}
	c, err := sc.Add(boundary...)
	if err != nil {
		return core.Cell{}, errors.Wrapf(err, "build simplex %s", k)
	}
	faces[k] = c

	return c, nil
}

// vertexKey identifies a vertex set independently of order.
func vertexKey(vs []core.Cell) string {
	ids := make([]uint64, len(vs))
	for i, v := range vs {
		ids[i] = v.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}

	return strings.Join(parts, ",")
}

func containsCell(cs []core.Cell, x core.Cell) bool {
	for _, c := range cs {
		if c == x {
			return true
		}
	}

	return false
}
