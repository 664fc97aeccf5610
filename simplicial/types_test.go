package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellcomplex/core"
	"github.com/katalvlaran/cellcomplex/simplicial"
)

func TestNew(t *testing.T) {
	sc, err := simplicial.New(2, simplicial.WithLogger(nil), simplicial.WithPredicate(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Dim())

	_, err = simplicial.New(-1)
	assert.ErrorIs(t, err, core.ErrInvalidDimension)
}

func TestKind(t *testing.T) {
	fx := newDoubleTetrahedron(t)
	sc := fx.sc
	cases := []struct {
		cell core.Cell
		want simplicial.Kind
	}{
		{sc.EmptyFace(), simplicial.KindSentinel},
		{sc.FullFace(), simplicial.KindSentinel},
		{fx.v(2), simplicial.KindVertex},
		{fx.e(2), simplicial.KindFace},
		{fx.f(2), simplicial.KindFace},
		{fx.t(1), simplicial.KindSimplex},
		{core.Cell{}, simplicial.KindInvalid},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sc.Kind(tc.cell), "%v", tc.cell)
	}
	assert.Equal(t, "simplex", simplicial.KindSimplex.String())
	assert.Equal(t, "invalid", simplicial.Kind(42).String())
}

func TestAddVertexAndCoords(t *testing.T) {
	sc, err := simplicial.New(2)
	require.NoError(t, err)

	p := []float64{1, 2}
	v, err := sc.AddVertex(p)
	require.NoError(t, err)
	p[0] = 99

	got, ok := sc.Coords(v)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, got)
	got[1] = 99
	again, _ := sc.Coords(v)
	assert.Equal(t, []float64{1, 2}, again)

	_, err = sc.AddVertex([]float64{1, 2, 3})
	assert.ErrorIs(t, err, simplicial.ErrDimensionMismatch)
	assert.Equal(t, 1, sc.Count(0))

	w, err := sc.AddVertex([]float64{3, 4})
	require.NoError(t, err)
	e, err := sc.Add(v, w)
	require.NoError(t, err)
	_, ok = sc.Coords(e)
	assert.False(t, ok, "only vertices carry coordinates")

	require.NoError(t, sc.Delete(v))
	_, ok = sc.Coords(v)
	assert.False(t, ok)
	assert.False(t, sc.Has(e))
}

func TestVertices(t *testing.T) {
	fx := newDoubleTetrahedron(t)
	sc := fx.sc

	vs, err := sc.Vertices(fx.t(1))
	require.NoError(t, err)
	assert.Equal(t, []core.Cell{fx.v(1), fx.v(2), fx.v(3), fx.v(4)}, vs)

	vs, err = sc.Vertices(fx.e(8))
	require.NoError(t, err)
	assert.Equal(t, []core.Cell{fx.v(3), fx.v(4)}, vs)

	vs, err = sc.Vertices(fx.v(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Cell{fx.v(2)}, vs)

	vs, err = sc.Vertices(sc.FullFace())
	require.NoError(t, err)
	assert.Nil(t, vs)

	_, err = sc.Vertices(core.Cell{})
	assert.ErrorIs(t, err, core.ErrCellNotFound)
}

func TestCloneIndependence(t *testing.T) {
	fx := newTetrahedron(t)
	src := fx.sc
	dst := src.Clone()

	t0, ok := dst.Rebind(fx.t(0))
	require.True(t, ok)
	v, err := dst.AddVertex([]float64{10, 10, 10})
	require.NoError(t, err)
	require.NoError(t, dst.AddStar(v, t0))

	assert.Equal(t, []int{5, 10, 10, 4}, dst.Counts())
	assert.Equal(t, []int{4, 6, 4, 1}, src.Counts())
	require.NoError(t, dst.Validate())

	a, ok := dst.Rebind(fx.v(3))
	require.True(t, ok)
	coords, ok := dst.Coords(a)
	require.True(t, ok)
	assert.Equal(t, []float64{100, 0, 0}, coords)

	in, err := dst.Contains(dst.Cells(3)[0], []float64{10, 10, 10})
	require.NoError(t, err)
	assert.True(t, in)
}
