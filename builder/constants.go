package builder

// Method names used to prefix constructor errors.
const (
	MethodSimplex       = "Simplex"
	MethodDoubleSimplex = "DoubleSimplex"
	MethodGrid          = "Grid"
	MethodRandomStars   = "RandomStars"
)

// MinGridSize is the smallest k accepted by Grid.
const MinGridSize = 1

// DefaultSpacing is the distance between neighbouring grid vertices.
const DefaultSpacing = 1.0

// maxStarAttempts bounds the samples RandomStars draws for one point
// before giving up.
const maxStarAttempts = 32

// minBarycentric keeps sampled weights away from zero, so sampled points
// stay off the facets of the chosen simplex.
const minBarycentric = 1e-3
