package predicates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cellcomplex/predicates"
)

func TestOrient2D(t *testing.T) {
	cases := []struct {
		name string
		pts  [][]float64
		want int
	}{
		{"counter-clockwise", [][]float64{{0, 0}, {1, 0}, {0, 1}}, 1},
		{"clockwise", [][]float64{{0, 0}, {0, 1}, {1, 0}}, -1},
		{"collinear", [][]float64{{0, 0}, {1, 1}, {2, 2}}, 0},
		{"coincident", [][]float64{{3, 4}, {3, 4}, {0, 1}}, 0},
		{"nearly collinear", [][]float64{{0, 0}, {1, 0}, {2, 1e-14}}, 0},
		{"large coordinates", [][]float64{{0, 0}, {1e6, 0}, {0, 1e6}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, predicates.Orient(tc.pts))
		})
	}
}

func TestOrient3D(t *testing.T) {
	tet := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	assert.Equal(t, -1, predicates.Orient(tet))

	swapped := [][]float64{tet[1], tet[0], tet[2], tet[3]}
	assert.Equal(t, 1, predicates.Orient(swapped))

	flat := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	assert.Equal(t, 0, predicates.Orient(flat))
}

func TestOrientDegenerateDimensions(t *testing.T) {
	// One point in R^0: the determinant of [1].
	assert.Equal(t, 1, predicates.Orient([][]float64{{}}))
	// Two points on a line.
	assert.Equal(t, -1, predicates.Orient([][]float64{{2}, {5}}))
	assert.Equal(t, 1, predicates.Orient([][]float64{{5}, {2}}))
}

func TestOrientMalformed(t *testing.T) {
	assert.Equal(t, 0, predicates.Orient(nil))
	assert.Equal(t, 0, predicates.Orient([][]float64{{0, 0}, {1, 0}}))
	assert.Equal(t, 0, predicates.Orient([][]float64{{0, 0}, {1, 0}, {0}}))
	assert.Equal(t, 0, predicates.Orient([][]float64{{0, 0}, {1, 0}, {math.NaN(), 1}}))
}

func TestOrientTol(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 0}, {2, 1e-14}}
	assert.Equal(t, 1, predicates.OrientTol(0)(pts))
	assert.Equal(t, 1, predicates.OrientTol(-1)(pts))
	assert.Equal(t, 0, predicates.OrientTol(predicates.DefaultEpsilon)(pts))
	assert.Equal(t, 0, predicates.OrientTol(0.5)([][]float64{{0, 0}, {1, 0}, {0, 1}}))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, predicates.Validate([][]float64{{0, 0}, {1, 0}, {0, 1}}))
	assert.ErrorIs(t, predicates.Validate(nil), predicates.ErrPointCount)
	assert.ErrorIs(t, predicates.Validate([][]float64{{0, 0}, {1, 0}}), predicates.ErrDimensionMismatch)
	assert.ErrorIs(t, predicates.Validate([][]float64{{0, 0}, {1, 0, 0}, {0, 1}}), predicates.ErrDimensionMismatch)
}
